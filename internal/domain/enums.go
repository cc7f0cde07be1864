package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indica que un valor está fuera del dominio declarado (enum o rango).
var ErrInvalidInput = errors.New("invalid input")

// labelSet resuelve etiquetas de un enum ordenado a su índice declarado.
type labelSet struct {
	field  string
	labels []string
}

func (s labelSet) parse(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	for i, label := range s.labels {
		if strings.EqualFold(label, v) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s %q is not one of %s", ErrInvalidInput, s.field, raw, strings.Join(s.labels, ", "))
}

func (s labelSet) label(i int) (string, bool) {
	if i < 0 || i >= len(s.labels) {
		return "", false
	}
	return s.labels[i], true
}

func (s labelSet) name(i int) string {
	if l, ok := s.label(i); ok {
		return l
	}
	return fmt.Sprintf("%s(%d)", s.field, i)
}

func (s labelSet) marshal(i int) ([]byte, error) {
	l, ok := s.label(i)
	if !ok {
		return nil, fmt.Errorf("%w: %s index %d", ErrInvalidInput, s.field, i)
	}
	return json.Marshal(l)
}

func (s labelSet) unmarshal(data []byte) (int, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return -1, fmt.Errorf("%w: %s must be a string label", ErrInvalidInput, s.field)
	}
	return s.parse(raw)
}

// Gender se recibe en el formulario pero ninguna regla de puntuación la usa.
type Gender int

const (
	GenderFemale Gender = iota
	GenderNonBinary
	GenderMale
)

var genders = labelSet{field: "gender", labels: []string{"Female", "Non-binary", "Male"}}

func ParseGender(raw string) (Gender, error) {
	i, err := genders.parse(raw)
	return Gender(i), err
}

func AllGenders() []Gender {
	return []Gender{GenderFemale, GenderNonBinary, GenderMale}
}

func (g Gender) String() string { return genders.name(int(g)) }

func (g Gender) Valid() bool {
	_, ok := genders.label(int(g))
	return ok
}

func (g Gender) MarshalJSON() ([]byte, error) { return genders.marshal(int(g)) }

func (g *Gender) UnmarshalJSON(data []byte) error {
	i, err := genders.unmarshal(data)
	if err != nil {
		return err
	}
	*g = Gender(i)
	return nil
}

// Platform es la red social principal declarada por el usuario.
type Platform int

const (
	PlatformSnapchat Platform = iota
	PlatformTelegram
	PlatformFacebook
	PlatformInstagram
	PlatformLinkedIn
	PlatformTwitter
	PlatformWhatsapp
)

var platforms = labelSet{
	field:  "platform",
	labels: []string{"Snapchat", "Telegram", "Facebook", "Instagram", "LinkedIn", "Twitter", "Whatsapp"},
}

func ParsePlatform(raw string) (Platform, error) {
	i, err := platforms.parse(raw)
	return Platform(i), err
}

func AllPlatforms() []Platform {
	return []Platform{
		PlatformSnapchat, PlatformTelegram, PlatformFacebook, PlatformInstagram,
		PlatformLinkedIn, PlatformTwitter, PlatformWhatsapp,
	}
}

func (p Platform) String() string { return platforms.name(int(p)) }

func (p Platform) Valid() bool {
	_, ok := platforms.label(int(p))
	return ok
}

func (p Platform) MarshalJSON() ([]byte, error) { return platforms.marshal(int(p)) }

func (p *Platform) UnmarshalJSON(data []byte) error {
	i, err := platforms.unmarshal(data)
	if err != nil {
		return err
	}
	*p = Platform(i)
	return nil
}

// LikesCategory es el bucket ordenado (bajo → alto) de likes recibidos por día.
type LikesCategory int

const (
	Likes0To10 LikesCategory = iota
	Likes10To20
	Likes20To30
	Likes30To50
	Likes50To70
	Likes70To90
	Likes90To110
)

var likesCategories = labelSet{
	field:  "likes_category",
	labels: []string{"0-10", "10-20", "20-30", "30-50", "50-70", "70-90", "90-110"},
}

func ParseLikesCategory(raw string) (LikesCategory, error) {
	i, err := likesCategories.parse(raw)
	return LikesCategory(i), err
}

func AllLikesCategories() []LikesCategory {
	out := make([]LikesCategory, len(likesCategories.labels))
	for i := range out {
		out[i] = LikesCategory(i)
	}
	return out
}

func (c LikesCategory) String() string { return likesCategories.name(int(c)) }

func (c LikesCategory) Valid() bool {
	_, ok := likesCategories.label(int(c))
	return ok
}

// Index devuelve la posición ordinal del bucket. Falla si el valor no pertenece al enum.
func (c LikesCategory) Index() (int, error) {
	if !c.Valid() {
		return -1, fmt.Errorf("%w: likes_category index %d", ErrInvalidInput, int(c))
	}
	return int(c), nil
}

func (c LikesCategory) MarshalJSON() ([]byte, error) { return likesCategories.marshal(int(c)) }

func (c *LikesCategory) UnmarshalJSON(data []byte) error {
	i, err := likesCategories.unmarshal(data)
	if err != nil {
		return err
	}
	*c = LikesCategory(i)
	return nil
}

// CommentsCategory es el bucket ordenado de comentarios recibidos por día.
type CommentsCategory int

const (
	Comments0To5 CommentsCategory = iota
	Comments5To10
	Comments10To15
	Comments15To20
	Comments20To25
	Comments25To30
	Comments30To35
	Comments35To40
)

var commentsCategories = labelSet{
	field:  "comments_category",
	labels: []string{"0-5", "5-10", "10-15", "15-20", "20-25", "25-30", "30-35", "35-40"},
}

func ParseCommentsCategory(raw string) (CommentsCategory, error) {
	i, err := commentsCategories.parse(raw)
	return CommentsCategory(i), err
}

func AllCommentsCategories() []CommentsCategory {
	out := make([]CommentsCategory, len(commentsCategories.labels))
	for i := range out {
		out[i] = CommentsCategory(i)
	}
	return out
}

func (c CommentsCategory) String() string { return commentsCategories.name(int(c)) }

func (c CommentsCategory) Valid() bool {
	_, ok := commentsCategories.label(int(c))
	return ok
}

func (c CommentsCategory) MarshalJSON() ([]byte, error) { return commentsCategories.marshal(int(c)) }

func (c *CommentsCategory) UnmarshalJSON(data []byte) error {
	i, err := commentsCategories.unmarshal(data)
	if err != nil {
		return err
	}
	*c = CommentsCategory(i)
	return nil
}

// MessagesCategory es el bucket ordenado de mensajes enviados por día.
type MessagesCategory int

const (
	Messages0To5 MessagesCategory = iota
	Messages5To10
	Messages10To15
	Messages15To20
	Messages20To25
	Messages25To30
	Messages30To40
	Messages40To50
)

var messagesCategories = labelSet{
	field:  "messages_category",
	labels: []string{"0-5", "5-10", "10-15", "15-20", "20-25", "25-30", "30-40", "40-50"},
}

func ParseMessagesCategory(raw string) (MessagesCategory, error) {
	i, err := messagesCategories.parse(raw)
	return MessagesCategory(i), err
}

func AllMessagesCategories() []MessagesCategory {
	out := make([]MessagesCategory, len(messagesCategories.labels))
	for i := range out {
		out[i] = MessagesCategory(i)
	}
	return out
}

func (c MessagesCategory) String() string { return messagesCategories.name(int(c)) }

func (c MessagesCategory) Valid() bool {
	_, ok := messagesCategories.label(int(c))
	return ok
}

func (c MessagesCategory) MarshalJSON() ([]byte, error) { return messagesCategories.marshal(int(c)) }

func (c *MessagesCategory) UnmarshalJSON(data []byte) error {
	i, err := messagesCategories.unmarshal(data)
	if err != nil {
		return err
	}
	*c = MessagesCategory(i)
	return nil
}
