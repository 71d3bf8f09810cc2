package listctl

import (
	"github.com/spf13/cobra"
)

type OperateId uint8

const (
	LIST_APPEND OperateId = iota
	LIST_PREPEND
	LIST_PUSH_FRONT
	LIST_PUSH_BACK
	LIST_POP
	LIST_POP_FRONT
	LIST_AT
	LIST_FIND
	LIST_CONTAINS
	LIST_INSERT
	LIST_REMOVE
	LIST_SIZE
	LIST_HEAD
	LIST_TAIL
	LIST_PRINT
	LIST_CLEAR
	LIST_MAX
)

const (
	ARG_NONE = iota
	ARG_VALUE
	ARG_INDEX
	ARG_VALUE_INDEX
)

var operateNames = [LIST_MAX]string{
	LIST_APPEND:     "append",
	LIST_PREPEND:    "prepend",
	LIST_PUSH_FRONT: "push-front",
	LIST_PUSH_BACK:  "push-back",
	LIST_POP:        "pop",
	LIST_POP_FRONT:  "pop-front",
	LIST_AT:         "at",
	LIST_FIND:       "find",
	LIST_CONTAINS:   "contains",
	LIST_INSERT:     "insert",
	LIST_REMOVE:     "remove",
	LIST_SIZE:       "size",
	LIST_HEAD:       "head",
	LIST_TAIL:       "tail",
	LIST_PRINT:      "print",
	LIST_CLEAR:      "clear",
}

var operateArgs = [LIST_MAX]int{
	LIST_APPEND:     ARG_VALUE,
	LIST_PREPEND:    ARG_VALUE,
	LIST_PUSH_FRONT: ARG_VALUE,
	LIST_PUSH_BACK:  ARG_VALUE,
	LIST_AT:         ARG_INDEX,
	LIST_FIND:       ARG_VALUE,
	LIST_CONTAINS:   ARG_VALUE,
	LIST_INSERT:     ARG_VALUE_INDEX,
	LIST_REMOVE:     ARG_INDEX,
}

func (id OperateId) String() string {
	if id >= LIST_MAX {
		return "unknown"
	}
	return operateNames[id]
}

type CommandHandler func() *cobra.Command

var RegisterHandlers = []CommandHandler{}

func RegisterCommand(handler CommandHandler) {
	RegisterHandlers = append(RegisterHandlers, handler)
}
