package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.x.lan/yunshan/linkedlist/listctl"
)

var RevCount, Revision, CommitDate string

func regiterCommand() {
	listctl.RegisterCommand(listctl.RegisterExecCommand)
}

func main() {
	regiterCommand()
	var version bool
	root := &cobra.Command{
		Use:   "linkedlist-ctl",
		Short: "Linked List Tool",
		Run: func(cmd *cobra.Command, args []string) {
			if version {
				fmt.Printf("%s-%s %s\n", RevCount, Revision, CommitDate)
				return
			}
			cmd.Help()
		},
	}
	root.Flags().BoolVarP(&version, "version", "v", false, "Display the version")
	for _, handler := range listctl.RegisterHandlers {
		cmd := handler()
		root.AddCommand(cmd)
	}
	root.SetArgs(os.Args[1:])
	root.Execute()
}
