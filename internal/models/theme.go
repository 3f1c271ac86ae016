package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type ThemeRequest struct {
	Theme Theme `json:"theme" validate:"required,oneof=light dark"`
}
