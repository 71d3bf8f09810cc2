package listctl

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gitlab.x.lan/yunshan/linkedlist/config"
	"gitlab.x.lan/yunshan/linkedlist/logger"
)

type ExecOptions struct {
	ConfigPath string
	LogLevel   string // 非空时覆盖配置文件
	Table      bool
}

func initLog(c *config.Config) error {
	if c.LogFile == "" {
		return logger.InitConsoleLog(c.LogLevel)
	}
	return logger.InitLog(c.LogFile, c.LogLevel)
}

// Exec runs tokens against a freshly seeded list and returns how many
// operations produced none or an error.
func Exec(out io.Writer, opts ExecOptions, tokens []string) (int, error) {
	c, err := config.Load(opts.ConfigPath)
	if err != nil {
		return 0, err
	}
	if opts.LogLevel != "" {
		c.LogLevel = opts.LogLevel
	}
	if err := initLog(&c); err != nil {
		return 0, err
	}

	ops, err := ParseOperations(tokens)
	if err != nil {
		return 0, errors.WithMessage(err, "parse operations")
	}

	runner := NewRunner(out)
	runner.Seed(&c)
	failed := runner.Run(ops)
	if opts.Table || c.Table {
		runner.Dump()
	}
	log.Infof("executed %d operations, %d without result, final size %d", len(ops), failed, runner.List().Size())
	return failed, nil
}

func RegisterExecCommand() *cobra.Command {
	opts := ExecOptions{}
	exec := &cobra.Command{
		Use:   "exec {operation}...",
		Short: "run operations on a linked list",
		Long: "operations: append:V prepend:V push-front:V push-back:V pop pop-front at:I\n" +
			"find:V contains:V insert:V:I remove:I size head tail print clear\n" +
			"append inserts at the front, prepend at the end",
		Example: "linkedlist-ctl exec append:1 append:2 prepend:3 insert:x:1 print",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				fmt.Println("please run with at least one operation.")
				return
			}
			if _, err := Exec(cmd.OutOrStdout(), opts, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	exec.Flags().StringVarP(&opts.ConfigPath, "config", "f", "", "Specify config file location")
	exec.Flags().StringVarP(&opts.LogLevel, "log-level", "l", "", "debug|info|warning|error")
	exec.Flags().BoolVarP(&opts.Table, "table", "t", false, "dump list as table after exec")
	return exec
}
