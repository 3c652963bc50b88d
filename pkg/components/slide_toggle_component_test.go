package components

import (
	"errors"
	"math"
	"testing"
)

// TestSetWindowFactor 测试窗口系数的校验
func TestSetWindowFactor(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "过小 0.05", value: 0.05, wantErr: true},
		{name: "边界 0.1 不包含", value: 0.1, wantErr: true},
		{name: "零", value: 0, wantErr: true},
		{name: "负数", value: -0.5, wantErr: true},
		{name: "一半 0.5", value: 0.5, wantErr: false},
		{name: "略大于下界", value: 0.11, wantErr: false},
		{name: "上界 1.0 包含", value: 1.0, wantErr: false},
		{name: "超过 1.0", value: 1.5, wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &SlideToggleComponent{WindowFactor: 0.8}
			err := c.SetWindowFactor(tt.value)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWindowFactor) {
					t.Fatalf("SetWindowFactor(%v) error = %v, want ErrInvalidWindowFactor", tt.value, err)
				}
				if c.WindowFactor != 0.8 {
					t.Errorf("rejected value must not change WindowFactor, got %v", c.WindowFactor)
				}
				return
			}

			if err != nil {
				t.Fatalf("SetWindowFactor(%v) unexpected error: %v", tt.value, err)
			}
			if c.WindowFactor != tt.value {
				t.Errorf("WindowFactor = %v, want %v", c.WindowFactor, tt.value)
			}
		})
	}
}

// TestHideDirectionAxisAndSign 测试四个方向的轴和符号
func TestHideDirectionAxisAndSign(t *testing.T) {
	tests := []struct {
		dir        HideDirection
		horizontal bool
		sign       float64
	}{
		{HideLeft, true, -1},
		{HideRight, true, 1},
		{HideUp, false, -1},
		{HideDown, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.IsHorizontal(); got != tt.horizontal {
				t.Errorf("IsHorizontal() = %v, want %v", got, tt.horizontal)
			}
			sign, err := tt.dir.BaseSign()
			if err != nil {
				t.Fatalf("BaseSign() error: %v", err)
			}
			if sign != tt.sign {
				t.Errorf("BaseSign() = %v, want %v", sign, tt.sign)
			}
		})
	}
}

// TestInvalidHideDirection 测试非法方向
func TestInvalidHideDirection(t *testing.T) {
	d := HideDirection(7)

	if d.Valid() {
		t.Error("HideDirection(7) should not be valid")
	}
	if _, err := d.BaseSign(); !errors.Is(err, ErrInvalidHideDirection) {
		t.Errorf("BaseSign() error = %v, want ErrInvalidHideDirection", err)
	}
	if d.String() != "HideDirection(7)" {
		t.Errorf("String() = %q", d.String())
	}
}

// TestParseHideDirection 测试方向名称解析
func TestParseHideDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    HideDirection
		wantErr bool
	}{
		{"left", HideLeft, false},
		{"Right", HideRight, false},
		{"UP", HideUp, false},
		{"top", HideUp, false},
		{"down", HideDown, false},
		{" bottom ", HideDown, false},
		{"", 0, true},
		{"diagonal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHideDirection(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHideDirection) {
					t.Errorf("ParseHideDirection(%q) error = %v, want ErrInvalidHideDirection", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHideDirection(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHideDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSlideToggleState 测试状态描述
func TestSlideToggleState(t *testing.T) {
	c := &SlideToggleComponent{}
	if c.State() != "idle(shown)" {
		t.Errorf("State() = %q", c.State())
	}
	c.IsSliding = true
	if c.State() != "sliding(from shown)" {
		t.Errorf("State() = %q", c.State())
	}
	c.IsSliding = false
	c.IsHidden = true
	if c.State() != "idle(hidden)" {
		t.Errorf("State() = %q", c.State())
	}
}
