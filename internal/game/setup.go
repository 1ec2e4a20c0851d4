package game

import (
	"unicode"
	"unicode/utf8"
)

// SetupField is a row of the character setup form.
type SetupField int

const (
	FieldName SetupField = iota
	FieldType
	FieldPersonality
	FieldStart
	setupFieldCount
)

func (f SetupField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldType:
		return "type"
	case FieldPersonality:
		return "personality"
	case FieldStart:
		return "start"
	default:
		return "unknown"
	}
}

// Setup is the "Create Your Cat" form.
type Setup struct {
	Name        string
	Type        CatType
	Personality Personality
	Field       SetupField
}

// Move shifts the selected row by dir with wraparound.
func (s *Setup) Move(dir int) {
	n := int(setupFieldCount)
	s.Field = SetupField(((int(s.Field)+dir)%n + n) % n)
}

// Adjust cycles the enum on the selected row. It reports whether anything
// changed.
func (s *Setup) Adjust(dir int) bool {
	switch s.Field {
	case FieldType:
		if dir < 0 {
			s.Type = s.Type.Prev()
		} else {
			s.Type = s.Type.Next()
		}
		return true
	case FieldPersonality:
		if dir < 0 {
			s.Personality = s.Personality.Prev()
		} else {
			s.Personality = s.Personality.Next()
		}
		return true
	}
	return false
}

// TypeRune appends r to the name when the name row is selected, r is a letter
// and the name has room.
func (s *Setup) TypeRune(r rune) bool {
	if s.Field != FieldName || !unicode.IsLetter(r) {
		return false
	}
	if utf8.RuneCountInString(s.Name) >= MaxNameLen {
		return false
	}
	s.Name += string(r)
	return true
}

// Backspace drops the last rune of the name. It reports whether the name row
// is selected.
func (s *Setup) Backspace() bool {
	if s.Field != FieldName {
		return false
	}
	if _, size := utf8.DecodeLastRuneInString(s.Name); size > 0 {
		s.Name = s.Name[:len(s.Name)-size]
	}
	return true
}

// Confirm builds the pet when the start row is selected and a name was given.
func (s *Setup) Confirm() (Pet, bool) {
	if s.Field != FieldStart || s.Name == "" {
		return Pet{}, false
	}
	pet, err := NewPet(s.Name, s.Type, s.Personality)
	if err != nil {
		return Pet{}, false
	}
	return pet, true
}
