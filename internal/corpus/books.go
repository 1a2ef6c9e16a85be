package corpus

// canonicalBooks lists the 66 books in canonical order. Names use the exact
// spelling of the RV1960 corpus document.
var canonicalBooks = []string{
	// Old Testament
	"Génesis", "Éxodo", "Levítico", "Números", "Deuteronomio", "Josué", "Jueces", "Rut",
	"1 Samuel", "2 Samuel", "1 Reyes", "2 Reyes", "1 Crónicas", "2 Crónicas", "Esdras", "Nehemías",
	"Ester", "Job", "Salmos", "Proverbios", "Eclesiastés", "Cantares", "Isaías", "Jeremías",
	"Lamentaciones", "Ezequiel", "Daniel", "Oseas", "Joel", "Amós", "Abdías", "Jonás",
	"Miqueas", "Nahúm", "Habacuc", "Sofonías", "Hageo", "Zacarías", "Malaquías",
	// New Testament
	"San Mateo", "San Marcos", "San Lucas", "San Juan", "Hechos", "Romanos", "1 Corintios", "2 Corintios",
	"Gálatas", "Efesios", "Filipenses", "Colosenses", "1 Tesalonicenses", "2 Tesalonicenses",
	"1 Timoteo", "2 Timoteo", "Tito", "Filemón", "Hebreos", "Santiago", "1 Pedro", "2 Pedro",
	"1 Juan", "2 Juan", "3 Juan", "Judas", "Apocalipsis",
}

// oldTestamentSize is the boundary between the testaments in a book listing.
const oldTestamentSize = 39

type Testament string

const (
	TestamentAll Testament = ""
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// ParseTestament accepts "", "old" and "new". Anything else is reported as invalid.
func ParseTestament(s string) (Testament, bool) {
	switch Testament(s) {
	case TestamentAll, TestamentOld, TestamentNew:
		return Testament(s), true
	}
	return TestamentAll, false
}

// CanonicalBooks returns a copy of the canonical book order.
func CanonicalBooks() []string {
	return append([]string(nil), canonicalBooks...)
}

var canonicalPosition = func() map[string]int {
	pos := make(map[string]int, len(canonicalBooks))
	for i, name := range canonicalBooks {
		pos[name] = i
	}
	return pos
}()
