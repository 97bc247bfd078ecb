package filter

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// programCache is a thread-safe LRU of compiled programs keyed by expression
type programCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

type cacheEntry struct {
	expression string
	program    *vm.Program
}

func newProgramCache(size int) *programCache {
	return &programCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get returns the program compiled for expression, marking it recently used
func (c *programCache) Get(expression string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.evictList.MoveToFront(node)
	return node.Value.(*cacheEntry).program, true
}

// Put stores a program, evicting the least recently used one when full
func (c *programCache) Put(expression string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[expression]; ok {
		c.evictList.MoveToFront(node)
		node.Value.(*cacheEntry).program = program
		return
	}

	c.items[expression] = c.evictList.PushFront(&cacheEntry{expression: expression, program: program})

	if c.evictList.Len() > c.size {
		oldest := c.evictList.Back()
		c.evictList.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

// Len returns the number of cached programs
func (c *programCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Clear drops every cached program
func (c *programCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}
