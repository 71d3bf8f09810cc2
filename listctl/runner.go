package listctl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/op/go-logging"

	"gitlab.x.lan/yunshan/linkedlist/config"
	"gitlab.x.lan/yunshan/linkedlist/datastructure"
	"gitlab.x.lan/yunshan/linkedlist/logger"
)

const (
	RESULT_OK    = "ok"
	RESULT_NONE  = "none"
	RESULT_ERROR = "error:"
)

var log = logging.MustGetLogger("listctl")

type Runner struct {
	list *datastructure.LinkedList[string]
	out  io.Writer
	log  *logger.PrefixLogger
}

func NewRunner(out io.Writer) *Runner {
	l, err := logger.GetPrefixLogger("listctl", "[exec]")
	if err != nil {
		l = logger.WrapWithPrefixLogger("[exec]", log)
	}
	return &Runner{
		list: datastructure.New[string](),
		out:  out,
		log:  l,
	}
}

func (r *Runner) List() *datastructure.LinkedList[string] {
	return r.list
}

// 按配置的seed-mode装入初始值
func (r *Runner) Seed(c *config.Config) {
	for _, v := range c.Initial {
		if c.SeedMode == config.SEED_MODE_APPEND {
			r.list.Append(v)
		} else {
			r.list.Prepend(v)
		}
	}
	r.log.Debugf("seeded %d values in %s mode: %s", len(c.Initial), c.SeedMode, r.list)
}

func absent(value string, ok bool) (string, bool) {
	if !ok {
		return RESULT_NONE, false
	}
	return value, true
}

func nodeValue(node *datastructure.Node[string]) (string, bool) {
	if node == nil {
		return RESULT_NONE, false
	}
	return node.Value, true
}

// 返回false表示结果为none或error
func (r *Runner) apply(op Operation) (string, bool) {
	list := r.list
	switch op.Id {
	case LIST_APPEND:
		list.Append(op.Value)
	case LIST_PREPEND:
		list.Prepend(op.Value)
	case LIST_PUSH_FRONT:
		list.PushFront(op.Value)
	case LIST_PUSH_BACK:
		list.PushBack(op.Value)
	case LIST_POP:
		return absent(list.Pop())
	case LIST_POP_FRONT:
		return absent(list.PopFront())
	case LIST_AT:
		return nodeValue(list.At(op.Index))
	case LIST_FIND:
		index, ok := list.Find(op.Value)
		return absent(strconv.Itoa(index), ok)
	case LIST_CONTAINS:
		return strconv.FormatBool(list.Contains(op.Value)), true
	case LIST_INSERT:
		if err := list.InsertAt(op.Value, op.Index); err != nil {
			return RESULT_ERROR + " " + err.Error(), false
		}
	case LIST_REMOVE:
		return absent(list.RemoveAt(op.Index))
	case LIST_SIZE:
		return strconv.Itoa(list.Size()), true
	case LIST_HEAD:
		return nodeValue(list.Head())
	case LIST_TAIL:
		return nodeValue(list.Tail())
	case LIST_PRINT:
		return list.String(), true
	case LIST_CLEAR:
		list.Clear()
	default:
		return RESULT_ERROR + " " + UnknownOperation.Error(), false
	}
	return RESULT_OK, true
}

// 逐条执行，返回结果为none或error的操作数，单条失败不中断
func (r *Runner) Run(ops []Operation) int {
	failed := 0
	for _, op := range ops {
		result, ok := r.apply(op)
		r.log.Debugf("%s => %s, size %d", op, result, r.list.Size())
		if !ok {
			r.log.Warningf("%s => %s", op, result)
			failed++
		}
		fmt.Fprintf(r.out, "%s => %s\n", op, result)
	}
	return failed
}

func (r *Runner) Dump() {
	table := tablewriter.NewWriter(r.out)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"INDEX", "VALUE"})

	tableItems := [][]string{}
	for i, v := range r.list.Values() {
		tableItems = append(tableItems, []string{strconv.Itoa(i), v})
	}
	table.AppendBulk(tableItems)
	table.Render()
}
