package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "adaptixctl",
	Short: "Adaptix demo maintenance tool",
	Long: `adaptixctl works against the same in-memory demo data the server loads
on start. Exports are produced offline without a running server.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Load and validate configuration",
	RunE:  runConfigCheck,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export demo data to files",
}

var exportScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Export the schedule window as .xlsx",
	RunE:  runExportSchedule,
}

var exportShiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "Export an employee's shifts as .ics",
	RunE:  runExportShifts,
}

var (
	anchorFlag   string
	modeFlag     string
	locationFlag string
	employeeFlag string
	outputFlag   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (defaults to ./config/config.yaml)")

	exportScheduleCmd.Flags().StringVar(&anchorFlag, "anchor", "", "Any date inside the window, YYYY-MM-DD (default today)")
	exportScheduleCmd.Flags().StringVar(&modeFlag, "mode", "week", "View mode: week, 2weeks or month")
	exportScheduleCmd.Flags().StringVar(&locationFlag, "location", "", "Only employees of this location")
	exportShiftsCmd.Flags().StringVar(&employeeFlag, "employee", "", "Employee id, e.g. e3 (required)")
	exportShiftsCmd.MarkFlagRequired("employee")
	exportCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output file (defaults to the generated file name)")

	exportCmd.AddCommand(exportScheduleCmd)
	exportCmd.AddCommand(exportShiftsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "server.port            %d\n", cfg.Server.Port)
	fmt.Fprintf(out, "schedule.timezone      %s\n", cfg.Schedule.Timezone)
	fmt.Fprintf(out, "schedule.max_visible   %d\n", cfg.Schedule.MaxVisibleShifts)
	fmt.Fprintf(out, "schedule.restricted    %s\n", cfg.Schedule.RestrictedShiftType)
	fmt.Fprintf(out, "notification.ttl       %s\n", cfg.Notification.TTL)
	fmt.Fprintf(out, "demo.reset_cron        %q\n", cfg.Demo.ResetCron)
	fmt.Fprintln(out, "配置校验通过")
	return nil
}

// loadServices 以演示数据装载与服务端相同的依赖链
func loadServices() (*service.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	svc := service.NewService(cfg, repository.NewRepository(), jwt.NewManager(&cfg.Auth), zap.NewNop())
	if err := svc.Demo.Reset(context.Background(), ""); err != nil {
		return nil, fmt.Errorf("装载演示数据失败: %w", err)
	}
	return svc, nil
}

func runExportSchedule(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	var q dto.ScheduleExportQuery
	q.Anchor = anchorFlag
	q.Mode = modeFlag
	q.Location = locationFlag
	buf, filename, err := svc.Export.ExportSchedule(cmd.Context(), &q)
	if err != nil {
		return err
	}
	return writeOutput(cmd, filename, buf.Bytes())
}

func runExportShifts(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices()
	if err != nil {
		return err
	}

	buf, filename, err := svc.Export.ExportShiftCalendar(cmd.Context(), employeeFlag)
	if err != nil {
		return err
	}
	return writeOutput(cmd, filename, buf.Bytes())
}

func writeOutput(cmd *cobra.Command, filename string, data []byte) error {
	path := outputFlag
	if path == "" {
		path = filename
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "已写入 %s (%d 字节)\n", path, len(data))
	return nil
}
