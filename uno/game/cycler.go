package game

const (
	left  = -1
	right = 1
)

// Cycler tracks the seating ring, whose turn it is and the direction of play.
type Cycler struct {
	elements  []string
	current   int
	direction int
}

func NewCycler(elements []string) *Cycler {
	copied := make([]string, len(elements))
	copy(copied, elements)
	return &Cycler{
		elements:  copied,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) Elements() []string {
	elements := make([]string, len(c.elements))
	copy(elements, c.elements)
	return elements
}

func (c *Cycler) ForEach(function func(string)) {
	for _, element := range c.elements {
		function(element)
	}
}

// Peek returns the element that Next would move to.
func (c *Cycler) Peek() string {
	elementCount := len(c.elements)
	return c.elements[(c.current+c.direction+elementCount)%elementCount]
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + c.direction + elementCount) % elementCount
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

// Reset puts the first element back on turn and restores the default direction.
func (c *Cycler) Reset() {
	c.current = 0
	c.direction = right
}

// Remove drops element from the ring. When it was on turn, the turn passes to
// the element that would have followed it.
func (c *Cycler) Remove(element string) bool {
	index := -1
	for i, candidate := range c.elements {
		if candidate == element {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	c.elements = append(c.elements[:index], c.elements[index+1:]...)
	elementCount := len(c.elements)
	switch {
	case elementCount == 0:
		c.current = 0
	case index < c.current:
		c.current--
	case index == c.current && c.direction == left:
		c.current = (index - 1 + elementCount) % elementCount
	case index == c.current:
		c.current = index % elementCount
	}
	return true
}
