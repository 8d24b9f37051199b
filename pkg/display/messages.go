package display

// Messages are the localized strings printed by the CLI.
type Messages struct {
	Generated  string
	Considered string
	Missing    string
	Prompt     string
	Cleaned    string
}

// MessagesFor returns the strings for lang, falling back to English.
func MessagesFor(lang string) Messages {
	switch lang {
	case "es":
		return Messages{
			Generated:  "Fraseclave Generada:",
			Considered: "Esta fraseclave se considera:",
			Missing:    "Le falta:",
			Prompt:     "Introduce la fraseclave a evaluar:",
			Cleaned:    "La lista limpia se guardó en %s (%d de %d palabras).",
		}
	default:
		return Messages{
			Generated:  "Generated Passphrase:",
			Considered: "This passphrase is considered:",
			Missing:    "Missing:",
			Prompt:     "Enter the passphrase to assess:",
			Cleaned:    "Cleaned word list has been saved to %s (%d of %d words kept).",
		}
	}
}
