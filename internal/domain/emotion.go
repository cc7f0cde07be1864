package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Emotion es una de las seis etiquetas que puede predecir el clasificador.
// El orden de las constantes es el orden de desempate del scorer.
type Emotion int

const (
	EmotionAnxiety Emotion = iota
	EmotionHappiness
	EmotionBoredom
	EmotionSadness
	EmotionNeutral
	EmotionAnger

	emotionCount = 6
)

var emotions = labelSet{
	field:  "emotion",
	labels: []string{"Anxiety", "Happiness", "Boredom", "Sadness", "Neutral", "Anger"},
}

func ParseEmotion(raw string) (Emotion, error) {
	i, err := emotions.parse(raw)
	return Emotion(i), err
}

// ScoringOrder devuelve las emociones en el orden usado para desempatar.
func ScoringOrder() []Emotion {
	return []Emotion{
		EmotionAnxiety, EmotionHappiness, EmotionBoredom,
		EmotionSadness, EmotionNeutral, EmotionAnger,
	}
}

// AllEmotions devuelve las emociones en el orden de presentación (gráficos, tablas).
func AllEmotions() []Emotion {
	return []Emotion{
		EmotionNeutral, EmotionAnxiety, EmotionHappiness,
		EmotionBoredom, EmotionSadness, EmotionAnger,
	}
}

func (e Emotion) String() string { return emotions.name(int(e)) }

func (e Emotion) Valid() bool {
	_, ok := emotions.label(int(e))
	return ok
}

func (e Emotion) MarshalJSON() ([]byte, error) { return emotions.marshal(int(e)) }

func (e *Emotion) UnmarshalJSON(data []byte) error {
	i, err := emotions.unmarshal(data)
	if err != nil {
		return err
	}
	*e = Emotion(i)
	return nil
}

var emotionColors = [emotionCount]string{
	EmotionAnxiety:   "#f59e0b",
	EmotionHappiness: "#10b981",
	EmotionBoredom:   "#6366f1",
	EmotionSadness:   "#3b82f6",
	EmotionNeutral:   "#94a3b8",
	EmotionAnger:     "#ef4444",
}

var interpretations = [emotionCount]string{
	EmotionAnxiety:   "High usage time may indicate increased stress or social comparison.",
	EmotionHappiness: "High engagement and moderate usage suggest positive social media experience.",
	EmotionBoredom:   "Low usage time suggests lack of interest or engagement.",
	EmotionSadness:   "Low engagement metrics suggest possible social isolation or disconnection.",
	EmotionNeutral:   "Balanced usage and engagement indicate stable emotional state.",
	EmotionAnger:     "Very high usage with certain patterns may indicate frustration.",
}

// Color devuelve el color hex con el que se dibuja la emoción.
func (e Emotion) Color() string {
	if !e.Valid() {
		return ""
	}
	return emotionColors[e]
}

// Interpretation devuelve la frase explicativa mostrada junto a la predicción.
func (e Emotion) Interpretation() string {
	if !e.Valid() {
		return ""
	}
	return interpretations[e]
}

// EmotionScoreSet acumula puntos por emoción. Siempre tiene las seis entradas,
// inicializadas en cero.
type EmotionScoreSet struct {
	scores [emotionCount]int
}

func (s EmotionScoreSet) Get(e Emotion) int {
	if !e.Valid() {
		return 0
	}
	return s.scores[e]
}

func (s *EmotionScoreSet) Add(e Emotion, points int) {
	if !e.Valid() {
		panic(fmt.Sprintf("domain: add score to invalid emotion %d", int(e)))
	}
	s.scores[e] += points
}

func (s EmotionScoreSet) Total() int {
	total := 0
	for _, v := range s.scores {
		total += v
	}
	return total
}

// Map devuelve una copia de los puntajes indexada por etiqueta.
func (s EmotionScoreSet) Map() map[string]int {
	out := make(map[string]int, emotionCount)
	for _, e := range ScoringOrder() {
		out[e.String()] = s.scores[e]
	}
	return out
}

// MarshalJSON serializa el set como objeto con las claves en orden de puntuación.
func (s EmotionScoreSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range ScoringOrder() {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", e.String(), s.scores[e])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *EmotionScoreSet) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out EmotionScoreSet
	for label, v := range raw {
		e, err := ParseEmotion(label)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("%w: negative score for %s", ErrInvalidInput, e)
		}
		out.scores[e] = v
	}
	*s = out
	return nil
}
