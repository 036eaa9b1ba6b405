package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/ordermerge/src/config"
	"github.com/username/ordermerge/src/logger"
	"github.com/username/ordermerge/src/processors"
	"github.com/username/ordermerge/src/services"
	"github.com/username/ordermerge/src/writers"
)

var (
	flagDir      string
	flagMode     string
	flagSortBy   string
	flagMinPrice float64
	flagMaxPrice float64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "ordermerge",
	Short: "Consolidate spreadsheet order exports into one deduplicated report",
	Long: `ordermerge walks a directory tree for spreadsheet order exports, normalizes
every row into canonical order records, deduplicates by contact phone
(later files win) and writes a single consolidated xlsx report sorted by
amount descending.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagDir, "dir", "", "root directory to scan (default: current directory)")
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "row expansion mode: expand or flat")
	rootCmd.Flags().StringVar(&flagSortBy, "sort-by", "", "sort field: price or total_amount")
	rootCmd.Flags().Float64Var(&flagMinPrice, "min-price", 0, "skip rows with a headline price below this")
	rootCmd.Flags().Float64Var(&flagMaxPrice, "max-price", 0, "skip rows with a headline price above this")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.SilenceUsage = true
}

func run(cmd *cobra.Command, args []string) error {
	config.LoadConfig()
	applyFlagOverrides(cmd)
	logger.InitLogger(config.Cfg.LogLevel)

	root := config.Cfg.InputDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		root = cwd
	}

	processor := processors.NewRowProcessor(config.Cfg.PipelineMode, config.Cfg.MinPrice, config.Cfg.MaxPrice)
	merger := processors.NewMerger(config.Cfg.SortField)
	writer := writers.NewExcelReportWriter(root, config.Cfg.OutputPrefix, config.Cfg.OutputSheet)
	pipeline := services.NewPipelineService(processor, merger, writer, services.PipelineOptions{
		OutputPrefix:    config.Cfg.OutputPrefix,
		InputExtensions: config.Cfg.InputExtensions,
	})

	result, err := pipeline.Run(root)
	switch {
	case errors.Is(err, services.ErrNoInputFiles):
		fmt.Println("未找到需要处理的输入文件！")
		return nil
	case errors.Is(err, services.ErrNoRecords):
		fmt.Println("没有成功处理任何文件！")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("\n处理完成！结果已保存到 %s\n", result.OutputPath)
	fmt.Printf("处理的文件数: %d\n", result.FilesFound)
	fmt.Printf("总记录数: %d\n", result.TotalRecords)
	fmt.Printf("去重后记录数: %d\n", result.FinalRecords)
	fmt.Printf("价格统计: 最低 %.2f, 最高 %.2f, 平均 %.2f\n",
		result.Summary.MinPrice, result.Summary.MaxPrice, result.Summary.MeanPrice)
	return nil
}

// applyFlagOverrides lets explicit CLI flags win over environment config.
func applyFlagOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("dir") {
		config.Cfg.InputDir = flagDir
	}
	if cmd.Flags().Changed("mode") {
		config.Cfg.PipelineMode = flagMode
	}
	if cmd.Flags().Changed("sort-by") {
		config.Cfg.SortField = flagSortBy
	}
	if cmd.Flags().Changed("min-price") {
		v := flagMinPrice
		config.Cfg.MinPrice = &v
	}
	if cmd.Flags().Changed("max-price") {
		v := flagMaxPrice
		config.Cfg.MaxPrice = &v
	}
	if cmd.Flags().Changed("log-level") {
		config.Cfg.LogLevel = flagLogLevel
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
