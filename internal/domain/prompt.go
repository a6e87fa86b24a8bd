package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ComposedPrompt is the ordered instruction/context pair sent to the
// generation backend for one lens. The system turn always precedes the
// user turn on the wire.
type ComposedPrompt struct {
	System string
	User   string
}

// ComposePrompt builds the prompt pair for one lens. Pure: no side
// effects, no clock. The surrealist and followup lenses deliberately
// skip the shared context block (no moon, no user meta).
func ComposePrompt(lens Lens, dream string, answers map[string]string, moon MoonPhase, meta UserMeta) (ComposedPrompt, error) {
	switch lens {
	case LensJungian:
		return ComposedPrompt{
			System: jungianSystem,
			User:   "Interpret via Jungian psychology. Context:\n" + sharedContext(dream, answers, moon, meta),
		}, nil
	case LensVedic:
		return ComposedPrompt{
			System: vedicSystem,
			User:   "Interpret via Vedic dream lore. Context:\n" + sharedContext(dream, answers, moon, meta),
		}, nil
	case LensAstrologer:
		return ComposedPrompt{
			System: astrologerSystem,
			User:   "Interpret with lunar phase + sun sign. Context:\n" + sharedContext(dream, answers, moon, meta),
		}, nil
	case LensSurrealist:
		return ComposedPrompt{
			System: surrealistSystem,
			User:   fmt.Sprintf("Create a short surrealist take inspired by:\n%s\nTone: gentle, imagistic.", dream),
		}, nil
	case LensFollowup:
		return ComposedPrompt{
			System: followupSystem,
			User:   fmt.Sprintf("Given the dream:\n%s\nand any answers: %s", dream, renderAnswers(answers)),
		}, nil
	default:
		return ComposedPrompt{}, fmt.Errorf("%w: %q", ErrUnknownLens, lens)
	}
}

func sharedContext(dream string, answers map[string]string, moon MoonPhase, meta UserMeta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dream text: %s\n\n", dream)
	fmt.Fprintf(&b, "User Answers (optional): %s\n\n", renderAnswers(answers))
	fmt.Fprintf(&b, "Moon:\n - Phase: %s\n - Illumination: %.1f%%\n - Influence: %s\n\n",
		moon.PhaseName, moon.Illumination, moon.Influence)
	fmt.Fprintf(&b, "User Meta:\n - Sun Sign: %s\n - Notable Stressors: %s",
		meta.SunSign, meta.Stressors)
	return b.String()
}

// renderAnswers serializes the answers map with keys sorted, so the
// same answers always produce the same prompt text.
func renderAnswers(answers map[string]string) string {
	if len(answers) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, answers[k])
	}
	b.WriteString("}")
	return b.String()
}
