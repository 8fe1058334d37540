package querybuilder

import "fmt"

// altNameFields are the secondary, lower-weight name variants checked
// regardless of request language: alternate, international, local,
// historic, regional, and house names.
var altNameFields = []string{"alt", "int", "loc", "old", "reg", "housename"}

// NameNgram builds the multi_match over each supported language's ngram
// name field plus the static alt-name fields. The "default" language
// sentinel resolves to the first configured language before boosting.
func NameNgram(q, language string, languages []string, lenient bool) MultiMatchQuery {
	effective := language
	if language == "default" {
		effective = languages[0]
	}

	var fields []string
	for _, lang := range languages {
		boost := 0.4
		if lang == effective {
			boost = 1.0
		}
		fields = append(fields, fmt.Sprintf("name.%s.ngrams^%v", lang, boost))
	}
	for _, alt := range altNameFields {
		fields = append(fields, fmt.Sprintf("name.%s.raw^0.4", alt))
	}

	mm := MultiMatchQuery{
		Fields:    fields,
		QueryText: q,
		Type:      "best_fields",
		Analyzer:  "search_ngram",
	}
	if lenient {
		mm.Fuzziness = 1
	} else {
		mm.Fuzziness = 0
	}
	return mm
}
