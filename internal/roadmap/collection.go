package roadmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Collection owns the mapping from topic name to roadmap. All mutation
// goes through its methods so callers (screens, CLI commands) never touch
// the map directly. Topic order is insertion order, kept for display.
type Collection struct {
	byTopic map[string]*Roadmap
	order   []string
	active  string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byTopic: make(map[string]*Roadmap)}
}

// Len returns the number of stored roadmaps.
func (c *Collection) Len() int {
	return len(c.order)
}

// Topics returns topic names in insertion order.
func (c *Collection) Topics() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the roadmap for a topic, or nil if absent.
func (c *Collection) Get(topic string) *Roadmap {
	return c.byTopic[topic]
}

// Active returns the currently selected topic, or "" when none.
func (c *Collection) Active() string {
	return c.active
}

// ActiveRoadmap returns the roadmap for the active topic, or nil.
func (c *Collection) ActiveRoadmap() *Roadmap {
	if c.active == "" {
		return nil
	}
	return c.byTopic[c.active]
}

// Select makes topic the active one.
func (c *Collection) Select(topic string) error {
	if _, ok := c.byTopic[topic]; !ok {
		return fmt.Errorf("select %q: %w", topic, ErrTopicNotFound)
	}
	c.active = topic
	return nil
}

// Add inserts a roadmap under its topic and makes it active. An existing
// roadmap for the same topic is replaced in place, keeping its position.
func (c *Collection) Add(rm *Roadmap) {
	if _, ok := c.byTopic[rm.Topic]; !ok {
		c.order = append(c.order, rm.Topic)
	}
	c.byTopic[rm.Topic] = rm
	c.active = rm.Topic
}

// Delete removes a topic. When the deleted topic was active, the first
// remaining topic (insertion order) becomes active, or "" if the
// collection is now empty. The new active topic is returned.
func (c *Collection) Delete(topic string) (string, error) {
	if _, ok := c.byTopic[topic]; !ok {
		return c.active, fmt.Errorf("delete %q: %w", topic, ErrTopicNotFound)
	}
	delete(c.byTopic, topic)
	for i, t := range c.order {
		if t == topic {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.active == topic {
		if len(c.order) > 0 {
			c.active = c.order[0]
		} else {
			c.active = ""
		}
	}
	return c.active, nil
}

// ToggleDay flips the completion flag of the given day.
func (c *Collection) ToggleDay(topic string, day int) error {
	d, err := c.day(topic, day)
	if err != nil {
		return err
	}
	d.IsCompleted = !d.IsCompleted
	return nil
}

// ToggleTask flips the completion flag of tasks[index] on the given day.
func (c *Collection) ToggleTask(topic string, day, index int) error {
	d, err := c.day(topic, day)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Tasks) {
		return fmt.Errorf("day %d task %d: %w", day, index, ErrTaskIndex)
	}
	d.Tasks[index].Completed = !d.Tasks[index].Completed
	return nil
}

// TogglePractice flips the completion flag of practiceQuestions[index]
// on the given day.
func (c *Collection) TogglePractice(topic string, day, index int) error {
	d, err := c.day(topic, day)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.PracticeQuestions) {
		return fmt.Errorf("day %d practice %d: %w", day, index, ErrTaskIndex)
	}
	d.PracticeQuestions[index].Completed = !d.PracticeQuestions[index].Completed
	return nil
}

func (c *Collection) day(topic string, day int) (*Day, error) {
	rm, ok := c.byTopic[topic]
	if !ok {
		return nil, fmt.Errorf("topic %q: %w", topic, ErrTopicNotFound)
	}
	d := rm.DayByNumber(day)
	if d == nil {
		return nil, fmt.Errorf("topic %q day %d: %w", topic, day, ErrDayNotFound)
	}
	return d, nil
}

// MarshalJSON serializes the collection as a JSON object keyed by topic,
// emitting keys in insertion order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, topic := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(topic)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.byTopic[topic])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a topic-keyed JSON object, preserving the key order
// it appears in. The first topic becomes active, matching startup behavior.
func (c *Collection) UnmarshalJSON(data []byte) error {
	c.byTopic = make(map[string]*Roadmap)
	c.order = nil
	c.active = ""

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("roadmap collection: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		topic, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("roadmap collection: non-string key %v", keyTok)
		}
		var rm Roadmap
		if err := dec.Decode(&rm); err != nil {
			return fmt.Errorf("roadmap collection: decode %q: %w", topic, err)
		}
		if _, exists := c.byTopic[topic]; !exists {
			c.order = append(c.order, topic)
		}
		c.byTopic[topic] = &rm
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if len(c.order) > 0 {
		c.active = c.order[0]
	}
	return nil
}
