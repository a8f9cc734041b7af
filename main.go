package main

import (
	"io"
	"os"

	"backend_testing/internal/config"
	"backend_testing/internal/logging"
	"backend_testing/internal/reporter"
	"backend_testing/internal/runner"
)

func main() {
	os.Exit(run(os.Stdout, config.Default()))
}

// run 依次执行固定的用例并返回退出码，任何失败都不会中断后续执行
func run(out io.Writer, cfg *config.Config) int {
	rep := reporter.New(out)
	rep.PrintBanner()

	r := runner.New(cfg, out)
	r.SetLogger(logging.New("healthcheck"))

	r.TestHealthCheck()

	return rep.GenerateReport(r.Summary())
}
