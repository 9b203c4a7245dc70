package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "inkwave-api",
	Short: "Inkwave社区博客API服务",
	Long:  `Inkwave社区博客平台的API服务，支持候补名单、用户注册、文章发布、评论互动等功能`,
}

func init() {
	// 添加全局标志
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config", "配置文件路径")

	// 添加子命令
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
