package reporter

import (
	"fmt"
	"io"
	"strings"

	"backend_testing/internal/model"
)

const (
	// ProductName 是被测后端所属的产品名
	ProductName = "shaï's company"

	bannerFormat = "🚀 Starting Backend API Tests for %s\n"
	bannerWidth  = 50
)

type Reporter struct {
	out io.Writer
}

func New(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// PrintBanner 输出测试开始时的标题
func (r *Reporter) PrintBanner() {
	fmt.Fprintf(r.out, bannerFormat, ProductName)
	fmt.Fprintln(r.out, strings.Repeat("=", bannerWidth))
}

// GenerateReport 输出汇总信息并返回进程退出码
func (r *Reporter) GenerateReport(summary model.Summary) int {
	fmt.Fprintf(r.out, "\n📊 Tests Summary:\n")
	fmt.Fprintf(r.out, "   Tests passed: %d/%d\n", summary.TestsPassed, summary.TestsRun)

	if summary.AllPassed() {
		fmt.Fprintln(r.out, "✅ All backend tests passed!")
		return 0
	}
	fmt.Fprintln(r.out, "❌ Some backend tests failed!")
	return 1
}
