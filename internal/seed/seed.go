package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"paw-connects/internal/domain/assets"
	"paw-connects/internal/domain/chat"
	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/mealplan"
	"paw-connects/internal/domain/quiz"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embedded []byte

var ErrInvalidSeed = errors.New("invalid seed")

// Data es el contenido inicial de la sesión, ya validado y convertido a tipos de dominio.
type Data struct {
	Assets     []assets.Asset
	Owned      []dogs.Dog
	Candidates []dogs.Dog
	Quiz       []quiz.Question
	Chat       chat.Transcript
}

type fileDoc struct {
	Assets []struct {
		Key  string `yaml:"key"`
		Path string `yaml:"path"`
	} `yaml:"assets"`
	Owned      []dogDoc      `yaml:"owned"`
	Candidates []dogDoc      `yaml:"candidates"`
	Quiz       []questionDoc `yaml:"quiz"`
	Chat       struct {
		Title    string         `yaml:"title"`
		Messages []chat.Message `yaml:"messages"`
	} `yaml:"chat"`
}

type dogDoc struct {
	ID         int      `yaml:"id"`
	Name       string   `yaml:"name"`
	AgeYears   int      `yaml:"age_years"`
	WeightLb   float64  `yaml:"weight_lb"`
	Sex        string   `yaml:"sex"`
	Neutered   bool     `yaml:"neutered"`
	Breed      string   `yaml:"breed"`
	Allergies  []string `yaml:"allergies"`
	Activities []string `yaml:"activities"`
	ImageKey   string   `yaml:"image_key"`
}

type questionDoc struct {
	Prompt       string   `yaml:"prompt"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
}

// Default devuelve el seed embebido.
func Default() (Data, error) {
	return Parse(embedded)
}

// Load lee un seed desde disco; path vacío = seed embebido.
func Load(path string) (Data, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Data, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	var out Data
	for _, a := range doc.Assets {
		if strings.TrimSpace(a.Key) == "" || strings.TrimSpace(a.Path) == "" {
			return Data{}, fmt.Errorf("%w: asset key and path required", ErrInvalidSeed)
		}
		out.Assets = append(out.Assets, assets.Asset{Key: a.Key, Path: a.Path})
	}

	seen := map[int]struct{}{}
	convert := func(items []dogDoc) ([]dogs.Dog, error) {
		res := make([]dogs.Dog, 0, len(items))
		for _, dd := range items {
			d, err := dd.toDog()
			if err != nil {
				return nil, fmt.Errorf("%w: dog %d: %w", ErrInvalidSeed, dd.ID, err)
			}
			if _, dup := seen[d.ID]; dup {
				return nil, fmt.Errorf("%w: duplicated dog id %d", ErrInvalidSeed, d.ID)
			}
			seen[d.ID] = struct{}{}
			res = append(res, d)
		}
		return res, nil
	}

	var err error
	if out.Owned, err = convert(doc.Owned); err != nil {
		return Data{}, err
	}
	if len(out.Owned) == 0 {
		return Data{}, fmt.Errorf("%w: at least one owned dog required", ErrInvalidSeed)
	}
	if out.Candidates, err = convert(doc.Candidates); err != nil {
		return Data{}, err
	}

	for i, qd := range doc.Quiz {
		q := quiz.Question{
			Prompt:       strings.TrimSpace(qd.Prompt),
			Options:      qd.Options,
			CorrectIndex: qd.CorrectIndex,
			Explanation:  strings.TrimSpace(qd.Explanation),
		}
		if err := q.Validate(); err != nil {
			return Data{}, fmt.Errorf("%w: question %d: %w", ErrInvalidSeed, i, err)
		}
		out.Quiz = append(out.Quiz, q)
	}
	if len(out.Quiz) == 0 {
		return Data{}, fmt.Errorf("%w: quiz needs at least one question", ErrInvalidSeed)
	}

	out.Chat = chat.NewTranscript(doc.Chat.Title, doc.Chat.Messages)
	return out, nil
}

func (dd dogDoc) toDog() (dogs.Dog, error) {
	sex, err := dogs.ParseSex(dd.Sex)
	if err != nil {
		return dogs.Dog{}, err
	}
	acts, err := dogs.ParseActivities(dd.Activities)
	if err != nil {
		return dogs.Dog{}, err
	}
	if err := mealplan.ValidateAllergies(dd.Allergies); err != nil {
		return dogs.Dog{}, err
	}

	d := dogs.Dog{
		ID:         dd.ID,
		Name:       strings.TrimSpace(dd.Name),
		AgeYears:   dd.AgeYears,
		WeightLb:   dd.WeightLb,
		Sex:        sex,
		Neutered:   dd.Neutered,
		Breed:      strings.TrimSpace(dd.Breed),
		Allergies:  append([]string{}, dd.Allergies...),
		Activities: acts,
		ImageKey:   strings.TrimSpace(dd.ImageKey),
	}
	if err := d.Validate(); err != nil {
		return dogs.Dog{}, err
	}
	return d, nil
}
