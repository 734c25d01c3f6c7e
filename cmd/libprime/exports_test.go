package main

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"
)

var exportLine = regexp.MustCompile(`^//export (\w+)$`)

func exportedSymbols(t *testing.T) []string {
	t.Helper()
	f, err := os.Open("main.go")
	if err != nil {
		t.Fatalf("open main.go: %v", err)
	}
	defer f.Close()

	var syms []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if m := exportLine.FindStringSubmatch(sc.Text()); m != nil {
			syms = append(syms, m[1])
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan main.go: %v", err)
	}
	return syms
}

func TestExports_StableEntryPoint(t *testing.T) {
	syms := exportedSymbols(t)
	if len(syms) == 0 || syms[0] != "is_prime" {
		t.Fatalf("first export must be is_prime, got %v", syms)
	}
}

func TestExports_DeclaredInHeader(t *testing.T) {
	header, err := os.ReadFile("../../include/prime.h")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	want := map[string]string{
		"is_prime":     "bool is_prime(int n);",
		"is_prime_u32": "bool is_prime_u32(unsigned int n);",
		"is_prime_u64": "bool is_prime_u64(unsigned long long n);",
	}
	for _, sym := range exportedSymbols(t) {
		decl, ok := want[sym]
		if !ok {
			t.Fatalf("export %s has no known declaration; add it to include/prime.h and this test", sym)
		}
		if !strings.Contains(string(header), decl) {
			t.Errorf("include/prime.h is missing %q", decl)
		}
	}
}
