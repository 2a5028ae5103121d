package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSubjects(t *testing.T) {
	content := strings.Join([]string{
		"Annales du baccalauréat",
		"Sujet 1 : La liberté est-elle une illusion ?",
		"Le travail libère-t-il l'homme ?",
		"Ceci est une phrase sans point d'interrogation.",
		"Page 3",
		"",
		"La liberté est-elle une illusion ?",
	}, "\n")

	subjects := ExtractSubjects(content)

	assert.Equal(t, []string{
		"La liberté est-elle une illusion ?",
		"Le travail libère-t-il l'homme ?",
	}, subjects)
}

func TestExtractSubjectsIgnoresShortAndLongLines(t *testing.T) {
	long := "Dans quelle mesure " + strings.Repeat("vraiment ", 20) + "peut-on parler de liberté ?"

	subjects := ExtractSubjects("Quoi ?\n" + long + "\n")
	assert.Empty(t, subjects)
}

func TestExtractSubjectsStripsLabels(t *testing.T) {
	subjects := ExtractSubjects("sujet 12 : Peut-on vivre sans croyances ?")

	assert.Equal(t, []string{"Peut-on vivre sans croyances ?"}, subjects)
}

func TestExtractSubjectsEmptyContent(t *testing.T) {
	assert.Empty(t, ExtractSubjects(""))
	assert.Empty(t, ExtractSubjects("Rien d'utile ici."))
}
