// Command smoke drives a running server through register, login, student CRUD and statistics.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

type client struct {
	base  string
	token string
	http  *http.Client
}

func main() {
	base := flag.String("addr", "http://localhost:8080", "server base URL")
	flag.Parse()

	c := &client{base: *base, http: &http.Client{Timeout: 10 * time.Second}}
	if err := c.run(); err != nil {
		fmt.Println("❌ smoke test failed:", err)
		os.Exit(1)
	}
	fmt.Println("✅ smoke test passed")
}

func (c *client) run() error {
	suffix := uuid.NewString()[:8]
	username := "smoke_" + suffix

	// 1. 注册
	var auth struct {
		Token string `json:"token"`
	}
	if err := c.call(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	}, http.StatusCreated, &auth); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	// 2. 错误密码必须被拒绝
	if err := c.call(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username, "password": "wrong",
	}, http.StatusUnauthorized, nil); err != nil {
		return fmt.Errorf("login with wrong password: %w", err)
	}

	// 3. 正确登录
	if err := c.call(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username, "password": "secret1",
	}, http.StatusOK, &auth); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.token = auth.Token
	fmt.Println("🔑 logged in as", username)

	// 4. 学生 CRUD
	var student struct {
		ID string `json:"id"`
	}
	if err := c.call(http.MethodPost, "/api/students", map[string]any{
		"firstName": "Bob",
		"lastName":  "Jones",
		"email":     "bob_" + suffix + "@example.com",
		"gpa":       2.8,
		"status":    "Inactive",
	}, http.StatusCreated, &student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	if err := c.call(http.MethodPut, "/api/students/"+student.ID, map[string]any{"gpa": 3.1}, http.StatusOK, nil); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	var found []json.RawMessage
	if err := c.call(http.MethodGet, "/api/students/search/JONES", nil, http.StatusOK, &found); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	fmt.Printf("🔍 search returned %d student(s)\n", len(found))

	// 5. 统计
	var stats map[string]map[string]float64
	if err := c.call(http.MethodGet, "/api/statistics", nil, http.StatusOK, &stats); err != nil {
		return fmt.Errorf("statistics: %w", err)
	}
	fmt.Printf("📊 total=%v inactive=%v avgGPA=%.2f\n",
		stats["totalStudents"]["count"], stats["inactiveStudents"]["count"], stats["averageGPA"]["avg"])

	// 6. 清理
	if err := c.call(http.MethodDelete, "/api/students/"+student.ID, nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return c.call(http.MethodDelete, "/api/students/"+student.ID, nil, http.StatusNotFound, nil)
}

func (c *client) call(method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	fmt.Printf("[%s %s] %d\n", method, path, resp.StatusCode)
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("expected status %d, got %d: %s", wantStatus, resp.StatusCode, raw)
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}
