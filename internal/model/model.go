package model

type TestCase struct {
	Name           string // 测试名称
	Method         string // HTTP方法，仅支持 GET 和 POST
	Endpoint       string // 相对于 BaseURL 的路径
	ExpectedStatus int    // 期望的状态码
	Data           any    // 请求体（仅 POST 发送）
}

type TestResult struct {
	Name           string
	Method         string
	Endpoint       string
	ExpectedStatus int
	ActualStatus   int // 0 表示没有收到响应
	Success        bool
	Body           map[string]any // 解析后的 JSON 对象
	RawBody        string
	Error          string
}

type Summary struct {
	TestsRun    int
	TestsPassed int
}

// AllPassed 当所有已执行的用例都通过时返回 true
func (s Summary) AllPassed() bool {
	return s.TestsPassed == s.TestsRun
}
