package roadmaps

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/arhaan/disha/internal/generate"
	"github.com/arhaan/disha/internal/ui/components"
)

type formField int

const (
	fieldTopic formField = iota
	fieldDays
)

// createForm collects a topic and a day count for a new roadmap.
type createForm struct {
	topic components.TextInput
	days  components.TextInput
	field formField
}

func newCreateForm() createForm {
	topic := components.NewTextInput("What do you want to learn?", false, 60)
	days := components.NewTextInput("How many days? (1-90)", true, 2)
	days.Model.Blur()
	return createForm{topic: topic, days: days}
}

func (f createForm) Init() tea.Cmd {
	return f.topic.Init()
}

func (f *createForm) nextField() {
	if f.field == fieldTopic {
		f.field = fieldDays
		f.topic.Model.Blur()
		f.days.Model.Focus()
	} else {
		f.field = fieldTopic
		f.days.Model.Blur()
		f.topic.Model.Focus()
	}
}

func (f createForm) Update(msg tea.Msg) (createForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.field == fieldTopic {
		f.topic, cmd = f.topic.Update(msg)
	} else {
		f.days, cmd = f.days.Update(msg)
	}
	return f, cmd
}

// values validates the form and returns the topic and day count.
func (f createForm) values() (string, int, error) {
	topic := f.topic.Value()
	if topic == "" {
		return "", 0, errors.New("enter a topic first")
	}
	days, err := f.days.NumericValue()
	if err != nil {
		return "", 0, errors.New("enter the number of days")
	}
	if days < generate.MinDays || days > generate.MaxDays {
		return "", 0, fmt.Errorf("days must be between %d and %d", generate.MinDays, generate.MaxDays)
	}
	return topic, days, nil
}
