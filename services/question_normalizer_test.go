package services

import (
	"errors"
	"testing"
)

func TestNormalizeQuestionMarksSingleCorrectOption(t *testing.T) {
	question, err := NormalizeQuestion("2+2?", []string{"3", "4", "5"}, 1)
	if err != nil {
		t.Fatalf("NormalizeQuestion returned error: %v", err)
	}

	if question.QuestionText != "2+2?" {
		t.Errorf("question text = %q, want %q", question.QuestionText, "2+2?")
	}
	if len(question.Options) != 3 {
		t.Fatalf("got %d options, want 3", len(question.Options))
	}

	correctCount := 0
	for i, option := range question.Options {
		if option.IsCorrect {
			correctCount++
			if i != 1 {
				t.Errorf("correct option at index %d, want 1", i)
			}
		}
	}
	if correctCount != 1 {
		t.Errorf("got %d correct options, want exactly 1", correctCount)
	}

	wantTexts := []string{"3", "4", "5"}
	for i, option := range question.Options {
		if option.OptionText != wantTexts[i] {
			t.Errorf("option %d text = %q, want %q", i, option.OptionText, wantTexts[i])
		}
	}
}

func TestNormalizeQuestionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		options []string
		index   int
	}{
		{"empty question text", "", []string{"a", "b"}, 0},
		{"whitespace question text", "   ", []string{"a", "b"}, 0},
		{"single option", "q?", []string{"a"}, 0},
		{"no options", "q?", nil, 0},
		{"negative index", "q?", []string{"a", "b"}, -1},
		{"index past end", "q?", []string{"a", "b"}, 2},
		{"empty option text", "q?", []string{"a", ""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeQuestion(tt.text, tt.options, tt.index)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}
