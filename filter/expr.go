package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
)

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables caching of compiled programs with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns expressions into filters over JSON records
type Compiler struct {
	helperFuncs map[string]any
	cache       *programCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: staticHelpers(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if program, ok := c.cache.Get(expression); ok {
			return &Filter{expression: expression, program: program, helpers: c.helperFuncs}, nil
		}
	}

	// Record helpers are declared with placeholder values so calls type-check
	env := make(map[string]any, len(c.helperFuncs)+8)
	maps.Copy(env, c.helperFuncs)
	maps.Copy(env, recordHelpers(nil))

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(), // record fields are only known at runtime
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	if c.cache != nil {
		c.cache.Put(expression, program)
	}

	return &Filter{expression: expression, program: program, helpers: c.helperFuncs}, nil
}

// CacheSize returns the number of cached programs
func (c *Compiler) CacheSize() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// ClearCache removes all cached programs
func (c *Compiler) ClearCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Compile compiles expression with a default compiler
func Compile(expression string) (*Filter, error) {
	return NewCompiler().Compile(expression)
}
