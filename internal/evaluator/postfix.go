package evaluator

// ToPostfix reorders infix tokens into postfix order. Pending operators of
// precedence >= the incoming one are emitted first, which makes equal
// precedence left-associative.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var pending []Token
	for _, tok := range tokens {
		if tok.Kind == TokenNumber {
			out = append(out, tok)
			continue
		}
		prec := operators[tok.Text].precedence
		for len(pending) > 0 {
			top := pending[len(pending)-1]
			if operators[top.Text].precedence < prec {
				break
			}
			out = append(out, top)
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, tok)
	}
	for i := len(pending) - 1; i >= 0; i-- {
		out = append(out, pending[i])
	}
	return out
}
