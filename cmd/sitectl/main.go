// sitectl 為站台維運工具：執行 migration 與建立管理員帳號
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Operator tool for the personal site",
		Long:          "sitectl runs database migrations and manages admin accounts.\nDATABASE_URL must point at the site's postgres database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newCreateSuperuserCmd())
	return root
}

func databaseURL() (string, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	return url, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗")+" "+err.Error())
		exitFunc(1)
	}
}
