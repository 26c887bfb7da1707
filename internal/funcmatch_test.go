package internal

import (
	"errors"
	"testing"
)

func TestDefaultFunctionMatcher(t *testing.T) {
	m := DefaultFunctionMatcher()
	if m != DefaultFunctionMatcher() {
		t.Fatal("default matcher is rebuilt on each call")
	}

	functions := []string{
		"function(){}",
		"function(a,b){return a+b;}",
		"function (a) {a}",
		"function(){ if (x) { y(); } }",
	}
	for _, s := range functions {
		if !m.MatchFunction(s) {
			t.Errorf("MatchFunction(%q) = false", s)
		}
	}

	notFunctions := []string{
		"", "function", "function()", "function  (){}", "functio(){}", " function(){}",
		"function(){} ", "function(){\n}", "var f = function(){}",
	}
	for _, s := range notFunctions {
		if m.MatchFunction(s) {
			t.Errorf("MatchFunction(%q) = true", s)
		}
	}
}

func TestMatchHeader(t *testing.T) {
	m := DefaultFunctionMatcher()

	tests := []struct {
		s    string
		want bool
	}{
		{"function()", true},
		{"function (a, b)", true},
		{"function(a){}", false},
		{"function", false},
		{"fn(a)", false},
	}

	for _, tt := range tests {
		if got := m.MatchHeader(tt.s); got != tt.want {
			t.Errorf("MatchHeader(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestParams(t *testing.T) {
	m := DefaultFunctionMatcher()

	tests := []struct {
		s      string
		want   string
		wantOK bool
	}{
		{"function(a,b)", "a,b", true},
		{"function ()", "", true},
		{"function( x )", " x ", true},
		{"function(a){}", "", false},
		{"nothing", "", false},
	}

	for _, tt := range tests {
		got, ok := m.Params(tt.s)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Params(%q) = %q, %v, want %q, %v", tt.s, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCompileFunctionMatcher(t *testing.T) {
	m, err := CompileFunctionMatcher(`^lambda:.*$`, "", "")
	if err != nil {
		t.Fatalf("CompileFunctionMatcher: %v", err)
	}
	if !m.MatchFunction("lambda: x") || m.MatchFunction("function(){}") {
		t.Error("custom function pattern not applied")
	}
	if !m.MatchHeader("function(a)") {
		t.Error("empty header pattern should keep the default")
	}

	if _, err := CompileFunctionMatcher("(", "", ""); err == nil {
		t.Error("expected error for invalid function pattern")
	}
	if _, err := CompileFunctionMatcher("", "", "[a-"); err == nil {
		t.Error("expected error for invalid params pattern")
	}

	_, err = CompileFunctionMatcher("", "", `^function\(.*\)$`)
	if !errors.Is(err, errMissingParamsGroup) {
		t.Errorf("got %v, want %v", err, errMissingParamsGroup)
	}
}
