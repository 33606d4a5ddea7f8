package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytecodeAddConstDeduplicates(t *testing.T) {
	bc := NewBytecode()
	a := bc.addConst(NumberValue(3))
	b := bc.addConst(NumberValue(3))
	c := bc.addConst(NumberValue(4))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, bc.Constants, 2)
}

func TestBytecodeEmitAppendsInstruction(t *testing.T) {
	bc := NewBytecode()
	bc.emit(OpAdd, 0, 0)
	bc.emit(OpPushConst, 1, 0)
	assert.Len(t, bc.Code, 2)
	assert.Equal(t, OpAdd, bc.Code[0].Op)
	assert.Equal(t, OpPushConst, bc.Code[1].Op)
	assert.Equal(t, uint16(1), bc.Code[1].A)
}
