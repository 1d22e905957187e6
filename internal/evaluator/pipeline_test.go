package evaluator_test

import (
	"reflect"
	"testing"

	"calcpad/internal/evaluator"
)

func TestNormalize(t *testing.T) {
	if got := evaluator.Normalize(" 8 ÷ 2 × 3 − 1\t"); got != "8/2*3-1" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestTokenize(t *testing.T) {
	num, op := evaluator.Num, evaluator.Op
	cases := []struct {
		expr string
		want []evaluator.Token
	}{
		{"12+3.5", []evaluator.Token{num("12"), op("+"), num("3.5")}},
		{"-5+3", []evaluator.Token{num("-5"), op("+"), num("3")}},
		{"2*-3", []evaluator.Token{num("2"), op("*"), num("-3")}},
		{"4-1", []evaluator.Token{num("4"), op("-"), num("1")}},
		{"5*", []evaluator.Token{num("5"), op("*")}},
		{"-.5", []evaluator.Token{num("-.5")}},
	}
	for _, c := range cases {
		got, err := evaluator.Tokenize(c.expr)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", c.expr, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestTokenize_Rejects(t *testing.T) {
	for _, expr := range []string{"1..2", "3.4.5", ".", "-", "2*-", "7x", "1,5"} {
		if _, err := evaluator.Tokenize(expr); err == nil {
			t.Errorf("Tokenize(%q): expected error", expr)
		}
	}
}

func TestToPostfix(t *testing.T) {
	toks, err := evaluator.Tokenize("2+3*4-6/2")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var got []string
	for _, tok := range evaluator.ToPostfix(toks) {
		got = append(got, tok.Text)
	}
	want := []string{"2", "3", "4", "*", "+", "6", "2", "/", "-"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
}

func TestToPostfix_LeftAssociative(t *testing.T) {
	toks, _ := evaluator.Tokenize("8-3-2")
	post := evaluator.ToPostfix(toks)
	v, err := evaluator.Reduce(post)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if v != 3 {
		t.Fatalf("8-3-2 = %v, want 3", v)
	}
}

func TestReduce_MissingOperand(t *testing.T) {
	post := []evaluator.Token{evaluator.Num("1"), evaluator.Op("+")}
	if _, err := evaluator.Reduce(post); err == nil {
		t.Fatal("expected error for missing operand")
	}
}

func TestReduce_LeftoverValues(t *testing.T) {
	post := []evaluator.Token{evaluator.Num("1"), evaluator.Num("2")}
	if _, err := evaluator.Reduce(post); err == nil {
		t.Fatal("expected error for two values left on the stack")
	}
}

func TestReduce_DivideByZeroStopsEarly(t *testing.T) {
	// 1 / 0 then a dangling + would be a syntax error if reduction continued.
	post := []evaluator.Token{evaluator.Num("1"), evaluator.Num("0"), evaluator.Op("/"), evaluator.Op("+")}
	if _, err := evaluator.Reduce(post); err != evaluator.ErrDivideByZero {
		t.Fatalf("err = %v, want ErrDivideByZero", err)
	}
}
