package functions

import "fmt"

// Greet formats the greeting returned by mcp__sayHello.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to the Postman MCP Server.", name)
}

// Reverse reverses s by runes.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
