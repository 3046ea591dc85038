package dogs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sex define el sexo del perro.
// @Enum MALE, FEMALE
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, s)
	}
}

// ActivityTag describe una actividad preferida; se usa para decidir matches.
// @Enum RUNNING, BEACH, HIKING, PARK, AGILITY
type ActivityTag string

const (
	ActivityRunning ActivityTag = "RUNNING"
	ActivityBeach   ActivityTag = "BEACH"
	ActivityHiking  ActivityTag = "HIKING"
	ActivityPark    ActivityTag = "PARK"
	ActivityAgility ActivityTag = "AGILITY"
)

// AllActivities en orden canónico (el mismo que usan los listados).
var AllActivities = []ActivityTag{
	ActivityRunning,
	ActivityBeach,
	ActivityHiking,
	ActivityPark,
	ActivityAgility,
}

func ParseActivityTag(s string) (ActivityTag, error) {
	t := ActivityTag(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range AllActivities {
		if a == t {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown activity %q", ErrInvalidInput, s)
}

// Activities es un conjunto de tags. Siempre se guarda sin duplicados y en
// orden canónico, así dos conjuntos iguales comparan igual.
type Activities []ActivityTag

func NewActivities(tags ...ActivityTag) Activities {
	seen := make(map[ActivityTag]struct{}, len(tags))
	for _, t := range tags {
		seen[t] = struct{}{}
	}

	out := make(Activities, 0, len(seen))
	for _, a := range AllActivities {
		if _, ok := seen[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func ParseActivities(raw []string) (Activities, error) {
	tags := make([]ActivityTag, 0, len(raw))
	for _, s := range raw {
		t, err := ParseActivityTag(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return NewActivities(tags...), nil
}

func (a Activities) Has(tag ActivityTag) bool {
	for _, t := range a {
		if t == tag {
			return true
		}
	}
	return false
}

// Intersect devuelve los tags presentes en ambos conjuntos (orden canónico).
func (a Activities) Intersect(other Activities) Activities {
	out := make(Activities, 0)
	for _, t := range a {
		if other.Has(t) {
			out = append(out, t)
		}
	}
	return NewActivities(out...)
}

// Dog es un valor inmutable: los servicios devuelven copias.
type Dog struct {
	ID       int
	Name     string
	AgeYears int
	WeightLb float64

	Sex      Sex
	Neutered bool
	Breed    string

	Allergies  []string // keys de ingredientes ("turkey", "sweet_potato", ...)
	Activities Activities

	ImageKey string // vacío = sin foto
}

// Validate revisa los campos de identidad y rangos básicos del perfil.
// Las alergias se validan contra la tabla de ingredientes en mealplan.
func (d Dog) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if _, err := ParseSex(string(d.Sex)); err != nil {
		return err
	}
	return d.ValidateProfile()
}

// ValidateProfile cubre lo que no depende de la identidad: sirve también
// para perfiles ad-hoc (sin id, nombre ni sexo).
func (d Dog) ValidateProfile() error {
	if d.AgeYears < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	if !(d.WeightLb > 0) {
		return fmt.Errorf("%w: weight must be > 0", ErrInvalidInput)
	}
	for _, a := range d.Activities {
		if _, err := ParseActivityTag(string(a)); err != nil {
			return err
		}
	}
	return nil
}

// Initial es el fallback textual cuando no hay imagen para el perro.
func (d Dog) Initial() string {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// Clone copia los slices para que nadie comparta memoria con el repo.
func (d Dog) Clone() Dog {
	out := d
	out.Allergies = append([]string(nil), d.Allergies...)
	out.Activities = append(Activities(nil), d.Activities...)
	return out
}
