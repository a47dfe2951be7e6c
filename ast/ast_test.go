package ast

import (
	"testing"

	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: lexer.Token{Type: lexer.LET, Literal: "let"},
				Name: &Identifier{
					Token: lexer.Token{Type: lexer.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: lexer.Token{Type: lexer.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestHashLiteralString(t *testing.T) {
	one := &IntegerLiteral{Token: lexer.Token{Type: lexer.INT, Literal: "1"}, Value: 1}
	two := &IntegerLiteral{Token: lexer.Token{Type: lexer.INT, Literal: "2"}, Value: 2}
	key := &StringLiteral{Token: lexer.Token{Type: lexer.STRING, Literal: "a"}, Value: "a"}

	hash := &HashLiteral{
		Token: lexer.Token{Type: lexer.LBRACE, Literal: "{"},
		Pairs: []HashPair{{Key: key, Value: one}, {Key: two, Value: two}},
	}

	assert.Equal(t, "{a:1, 2:2}", hash.String())
}
