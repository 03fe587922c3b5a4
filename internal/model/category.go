package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

type CategoryLevel string

const (
	LevelEasy   CategoryLevel = "easy"
	LevelMedium CategoryLevel = "medi"
	LevelHard   CategoryLevel = "hard"
)

func (l CategoryLevel) Valid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// swagger:model Category
type Category struct {
	BaseModel
	Name  string        `gorm:"size:32;not null" json:"name"`
	Level CategoryLevel `gorm:"size:4;not null" json:"level"`
	Slug  string        `gorm:"size:32;uniqueIndex" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeSave 每次保存都根据名称重新生成 slug
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = Slugify(c.Name)
	return nil
}

var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify 转为小写 ASCII，非字母数字字符折叠为单个 '-'
func Slugify(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case r == '_':
			b.WriteRune(r)
			dash = false
		case unicode.IsSpace(r) || r == '-':
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > 32 {
		slug = strings.TrimRight(slug[:32], "-")
	}
	return slug
}
