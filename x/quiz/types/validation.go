package types

import "unicode/utf8"

// ValidateName checks a topic or quiz set name against the configured cap.
func ValidateName(name string, maxLen uint32) error {
	if name == "" {
		return ErrEmptyName
	}
	if n := utf8.RuneCountInString(name); uint32(n) > maxLen {
		return ErrNameTooLong.Wrapf("%d runes, max %d", n, maxLen)
	}
	return nil
}

// ValidateText checks free-form question or answer text against a cap.
func ValidateText(text string, maxLen uint32) error {
	if text == "" {
		return ErrTextTooLong.Wrap("text cannot be empty")
	}
	if n := utf8.RuneCountInString(text); uint32(n) > maxLen {
		return ErrTextTooLong.Wrapf("%d runes, max %d", n, maxLen)
	}
	return nil
}

// ValidateQuestionCount checks the 1..=max bound at quiz creation.
func ValidateQuestionCount(count, max uint32) error {
	if count == 0 {
		return ErrInvalidQuestionCount.Wrap("at least one question required")
	}
	if count > max {
		return ErrInvalidQuestionCount.Wrapf("%d questions, max %d", count, max)
	}
	return nil
}
