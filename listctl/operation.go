package listctl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	UnknownOperation = errors.New("Unknown operation")
	BadArgument      = errors.New("Bad argument")
)

const ARG_SEPARATOR = ":"

// 形如 name[:value][:index]，如 insert:x:2
type Operation struct {
	Id    OperateId
	Value string
	Index int
}

func (o Operation) String() string {
	if o.Id >= LIST_MAX {
		return o.Id.String()
	}
	switch operateArgs[o.Id] {
	case ARG_VALUE:
		return fmt.Sprintf("%s:%s", o.Id, o.Value)
	case ARG_INDEX:
		return fmt.Sprintf("%s:%d", o.Id, o.Index)
	case ARG_VALUE_INDEX:
		return fmt.Sprintf("%s:%s:%d", o.Id, o.Value, o.Index)
	}
	return o.Id.String()
}

func lookupOperate(name string) (OperateId, bool) {
	for id, n := range operateNames {
		if n == name {
			return OperateId(id), true
		}
	}
	return LIST_MAX, false
}

func parseIndex(token, s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(BadArgument, "%s: index %q is not an integer", token, s)
	}
	return index, nil
}

func ParseOperation(token string) (Operation, error) {
	fields := strings.Split(token, ARG_SEPARATOR)
	id, ok := lookupOperate(strings.ToLower(fields[0]))
	if !ok {
		return Operation{}, errors.Wrapf(UnknownOperation, "%q", token)
	}
	args := fields[1:]
	op := Operation{Id: id}

	var err error
	switch operateArgs[id] {
	case ARG_NONE:
		if len(args) != 0 {
			return Operation{}, errors.Wrapf(BadArgument, "%s takes no argument", id)
		}
	case ARG_VALUE:
		if len(args) != 1 {
			return Operation{}, errors.Wrapf(BadArgument, "usage %s:value", id)
		}
		op.Value = args[0]
	case ARG_INDEX:
		if len(args) != 1 {
			return Operation{}, errors.Wrapf(BadArgument, "usage %s:index", id)
		}
		op.Index, err = parseIndex(token, args[0])
	case ARG_VALUE_INDEX:
		if len(args) != 2 {
			return Operation{}, errors.Wrapf(BadArgument, "usage %s:value:index", id)
		}
		op.Value = args[0]
		op.Index, err = parseIndex(token, args[1])
	}
	if err != nil {
		return Operation{}, err
	}
	return op, nil
}

func ParseOperations(tokens []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(tokens))
	for _, token := range tokens {
		op, err := ParseOperation(token)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
