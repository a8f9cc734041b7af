package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"backend_testing/internal/config"
	"backend_testing/internal/logging"
	"backend_testing/internal/model"
)

// healthCheckCase 返回固定执行的健康检查用例
func healthCheckCase() model.TestCase {
	return model.TestCase{
		Name:           "Health Check",
		Method:         http.MethodGet,
		Endpoint:       "api/health",
		ExpectedStatus: http.StatusOK,
	}
}

var errUnsupportedMethod = errors.New("unsupported method")

// Runner 顺序执行用例并记录计数，不支持并发调用
type Runner struct {
	config  *config.Config
	client  *http.Client
	out     io.Writer
	logger  *log.Logger
	summary model.Summary
	results []model.TestResult
}

func New(cfg *config.Config, out io.Writer) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		config: cfg,
		client: &http.Client{},
		out:    out,
		logger: logging.Discard(),
	}
}

// SetLogger 设置诊断日志输出，nil 表示丢弃
func (r *Runner) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	r.logger = l
}

// RunTest 执行单个用例。状态码匹配时返回 true 和解析后的响应体，
// 否则返回 false 和空 map。网络错误不会向上抛出。
func (r *Runner) RunTest(name, method, endpoint string, expectedStatus int, data any) (bool, map[string]any) {
	result := r.Run(model.TestCase{
		Name:           name,
		Method:         method,
		Endpoint:       endpoint,
		ExpectedStatus: expectedStatus,
		Data:           data,
	})
	return result.Success, result.Body
}

// TestHealthCheck 请求 GET api/health 并期望 200
func (r *Runner) TestHealthCheck() bool {
	return r.Run(healthCheckCase()).Success
}

// Run 执行用例并返回结果
func (r *Runner) Run(tc model.TestCase) model.TestResult {
	r.summary.TestsRun++
	fmt.Fprintf(r.out, "\n🔍 Testing %s...\n", tc.Name)

	result := r.executeTest(tc)
	if result.Success {
		r.summary.TestsPassed++
	}
	r.results = append(r.results, result)
	return result
}

func (r *Runner) Summary() model.Summary {
	return r.summary
}

// Results 按执行顺序返回结果的副本
func (r *Runner) Results() []model.TestResult {
	dst := make([]model.TestResult, len(r.results))
	copy(dst, r.results)
	return dst
}

func (r *Runner) executeTest(tc model.TestCase) model.TestResult {
	result := model.TestResult{
		Name:           tc.Name,
		Method:         tc.Method,
		Endpoint:       tc.Endpoint,
		ExpectedStatus: tc.ExpectedStatus,
		Body:           map[string]any{},
	}

	req, err := r.newRequest(tc)
	if err != nil {
		return r.fail(result, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return r.fail(result, err)
	}
	defer resp.Body.Close()

	// 响应体读取失败按网络错误处理，不记录状态码
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return r.fail(result, fmt.Errorf("read response: %w", err))
	}
	result.ActualStatus = resp.StatusCode
	result.RawBody = string(body)

	if resp.StatusCode != tc.ExpectedStatus {
		fmt.Fprintf(r.out, "❌ Failed - Expected %d, got %d\n", tc.ExpectedStatus, resp.StatusCode)
		fmt.Fprintf(r.out, "   Response: %s\n", result.RawBody)
		return result
	}

	result.Success = true
	fmt.Fprintf(r.out, "✅ Passed - Status: %d\n", resp.StatusCode)
	if len(body) > 0 {
		fmt.Fprintf(r.out, "   Response: %s\n", formatBody(body))
		result.Body = parseBody(body)
	}
	return result
}

func (r *Runner) fail(result model.TestResult, err error) model.TestResult {
	result.Success = false
	result.Error = err.Error()
	r.logger.Printf("%s %s: %v", result.Method, result.Endpoint, err)
	fmt.Fprintf(r.out, "❌ Failed - Error: %s\n", result.Error)
	return result
}

func (r *Runner) newRequest(tc model.TestCase) (*http.Request, error) {
	url := buildURL(r.config.BaseURL, tc.Endpoint)

	var body io.Reader
	switch tc.Method {
	case http.MethodGet:
	case http.MethodPost:
		if tc.Data != nil {
			payload, err := json.Marshal(tc.Data)
			if err != nil {
				return nil, fmt.Errorf("encode request body: %w", err)
			}
			body = bytes.NewReader(payload)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedMethod, tc.Method)
	}

	req, err := http.NewRequest(tc.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// buildURL 拼接 BaseURL 和路径，保证中间只有一个斜杠
func buildURL(baseURL, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// formatBody 合法 JSON 压缩输出，否则原样返回
func formatBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}

// parseBody 只接受 JSON 对象，其余情况返回空 map
func parseBody(body []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
