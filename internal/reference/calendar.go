package reference

// dailyEntry is one day of the verse-of-the-day calendar.
type dailyEntry struct {
	Theme string
	Refs  [5]string
}

// dailyVerses is indexed by day of month minus one.
var dailyVerses = [31]dailyEntry{
	{"Valentía", [5]string{"Josué 1:9", "Salmo 27:1", "Is. 41:10", "2 Tim. 1:7", "Salmo 118:6"}},
	{"Provisión", [5]string{"Salmo 23:1", "Fil. 4:19", "Mateo 6:33", "Salmo 34:10", "Mateo 7:11"}},
	{"Fortaleza", [5]string{"Fil. 4:13", "Is. 40:31", "Salmo 18:2", "Efesios 6:10", "Hab. 3:19"}},
	{"Paz", [5]string{"Juan 14:27", "Fil. 4:7", "Is. 26:3", "Salmo 4:8", "Col. 3:15"}},
	{"Confianza", [5]string{"Prov. 3:5", "Jer. 17:7", "Salmo 37:5", "Salmo 62:8", "Is. 12:2"}},
	{"Amor de Dios", [5]string{"Juan 3:16", "Rom. 5:8", "1 Juan 4:19", "Sof. 3:17", "Jer. 31:3"}},
	{"Descanso", [5]string{"Mateo 11:28", "Salmo 62:1", "Salmo 91:1", "Éxodo 33:14", "Heb. 4:9"}},
	{"Sabiduría", [5]string{"Sant. 1:5", "Prov. 2:6", "Salmo 111:10", "Prov. 4:7", "Col. 2:3"}},
	{"Propósito", [5]string{"Jer. 29:11", "Rom. 8:28", "Efesios 2:10", "Prov. 16:3", "Salmo 138:8"}},
	{"Refugio", [5]string{"Salmo 46:1", "Salmo 9:9", "Prov. 18:10", "Salmo 144:2", "Nahúm 1:7"}},
	{"Fe", [5]string{"Heb. 11:1", "Marcos 9:23", "Mateo 21:22", "Rom. 10:17", "2 Cor. 5:7"}},
	{"Guía", [5]string{"Salmo 119:105", "Is. 30:21", "Salmo 32:8", "Prov. 3:6", "Salmo 48:14"}},
	{"Ansiedad", [5]string{"1 Pedro 5:7", "Fil. 4:6", "Salmo 55:22", "Mateo 6:34", "Salmo 94:19"}},
	{"Perdonar", [5]string{"Efesios 4:32", "Col. 3:13", "Mateo 6:14", "Luc. 6:37", "Prov. 17:9"}},
	{"Gozar", [5]string{"Neh. 8:10", "Salmo 16:11", "Fil. 4:4", "1 Tes. 5:16", "Hab. 3:18"}},
	{"Gracia", [5]string{"Efesios 2:8", "Heb. 4:16", "2 Cor. 12:9", "Rom. 3:24", "Tito 2:11"}},
	{"Socorro", [5]string{"Salmo 121:2", "Is. 41:13", "Salmo 145:18", "Heb. 13:6", "Salmo 40:17"}},
	{"Fidelidad", [5]string{"Lam. 3:23", "2 Tes. 3:3", "1 Cor. 1:9", "Deut. 7:9", "Salmo 36:5"}},
	{"Victoria", [5]string{"Rom. 8:37", "1 Cor. 15:57", "1 Juan 5:4", "Salmo 60:12", "Prov. 21:31"}},
	{"Corazón", [5]string{"Prov. 4:23", "Salmo 51:10", "Mateo 5:8", "Ezeq. 36:26", "Salmo 119:11"}},
	{"Palabra", [5]string{"Heb. 4:12", "Mateo 4:4", "Is. 40:8", "Salmo 19:7", "Josué 1:8"}},
	{"Luz", [5]string{"Mateo 5:14", "Juan 8:12", "Salmo 27:1", "Efesios 5:8", "1 Juan 1:7"}},
	{"Oración", [5]string{"Jer. 33:3", "Mateo 7:7", "1 Juan 5:14", "Salmo 145:18", "Luc. 11:9"}},
	{"Identidad", [5]string{"Juan 1:12", "1 Pedro 2:9", "2 Cor. 5:17", "Gal. 2:20", "Efesios 1:4"}},
	{"Fruto", [5]string{"Gal. 5:22", "Juan 15:5", "Fil. 1:11", "Salmo 1:3", "Sant. 3:17"}},
	{"Humildad", [5]string{"Sant. 4:10", "1 Pedro 5:6", "Prov. 22:4", "Miq. 6:8", "Fil. 2:3"}},
	{"Esperanza", [5]string{"Rom. 15:13", "Salmo 130:5", "Heb. 10:23", "Is. 40:31", "Job 14:7"}},
	{"Verdad", [5]string{"Juan 14:6", "Juan 8:32", "Salmo 25:5", "Efesios 4:25", "3 Juan 1:4"}},
	{"Servicio", [5]string{"Gal. 5:13", "Mateo 20:28", "Col. 3:23", "Heb. 6:10", "1 Pedro 4:10"}},
	{"Justicia", [5]string{"Mateo 5:6", "Salmo 37:6", "Prov. 21:21", "Is. 32:17", "Rom. 1:17"}},
	{"Bendición", [5]string{"Núm. 6:24", "Salmo 67:1", "Deut. 28:2", "Salmo 1:1", "Prov. 10:22"}},
}

// abbreviations expands the short book names used in the calendar to the
// corpus spelling. Keys carry no trailing period.
var abbreviations = map[string]string{
	"Gn":      "Génesis",
	"Éx":      "Éxodo",
	"Ex":      "Éxodo",
	"Exodo":   "Éxodo",
	"Éxodo":   "Éxodo",
	"Lev":     "Levítico",
	"Num":     "Números",
	"Núm":     "Números",
	"Deut":    "Deuteronomio",
	"Dt":      "Deuteronomio",
	"Jos":     "Josué",
	"Josué":   "Josué",
	"Jue":     "Jueces",
	"1 Sam":   "1 Samuel",
	"2 Sam":   "2 Samuel",
	"1 Re":    "1 Reyes",
	"2 Re":    "2 Reyes",
	"1 Cr":    "1 Crónicas",
	"2 Cr":    "2 Crónicas",
	"Esd":     "Esdras",
	"Neh":     "Nehemías",
	"Est":     "Ester",
	"Job":     "Job",
	"Sal":     "Salmos",
	"Salmo":   "Salmos",
	"Prov":    "Proverbios",
	"Ecl":     "Eclesiastés",
	"Cant":    "Cantares",
	"Is":      "Isaías",
	"Jer":     "Jeremías",
	"Lam":     "Lamentaciones",
	"Ezeq":    "Ezequiel",
	"Dan":     "Daniel",
	"Os":      "Oseas",
	"Abd":     "Abdías",
	"Jon":     "Jonás",
	"Miq":     "Miqueas",
	"Nah":     "Nahúm",
	"Nahúm":   "Nahúm",
	"Hab":     "Habacuc",
	"Sof":     "Sofonías",
	"Hag":     "Hageo",
	"Zac":     "Zacarías",
	"Mal":     "Malaquías",
	"Mt":      "San Mateo",
	"Mateo":   "San Mateo",
	"Mr":      "San Marcos",
	"Marcos":  "San Marcos",
	"Lc":      "San Lucas",
	"Luc":     "San Lucas",
	"Lucas":   "San Lucas",
	"Jn":      "San Juan",
	"Juan":    "San Juan",
	"Hch":     "Hechos",
	"Rom":     "Romanos",
	"1 Cor":   "1 Corintios",
	"2 Cor":   "2 Corintios",
	"Gal":     "Gálatas",
	"Gál":     "Gálatas",
	"Ef":      "Efesios",
	"Efesios": "Efesios",
	"Fil":     "Filipenses",
	"Col":     "Colosenses",
	"1 Tes":   "1 Tesalonicenses",
	"2 Tes":   "2 Tesalonicenses",
	"1 Tim":   "1 Timoteo",
	"2 Tim":   "2 Timoteo",
	"Tito":    "Tito",
	"Flm":     "Filemón",
	"Heb":     "Hebreos",
	"Sant":    "Santiago",
	"Stg":     "Santiago",
	"1 Pedro": "1 Pedro",
	"2 Pedro": "2 Pedro",
	"1 Ped":   "1 Pedro",
	"2 Ped":   "2 Pedro",
	"1 Juan":  "1 Juan",
	"2 Juan":  "2 Juan",
	"3 Juan":  "3 Juan",
	"Jud":     "Judas",
	"Ap":      "Apocalipsis",
	"Apoc":    "Apocalipsis",
}
