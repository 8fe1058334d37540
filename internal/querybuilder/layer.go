package querybuilder

// Layer builds the terms filter restricting results to the given set of
// address-type layer names.
func Layer(layers []string) TermsQuery {
	return TermsQuery{Field: "type", Values: layers}
}
