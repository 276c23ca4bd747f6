package cmdtokens

// FormalTitles is a map where key is a flag title and value indicates the flag
// takes an option value
type FormalTitles map[string]bool

func (titles FormalTitles) Clone() FormalTitles {
	clone := make(FormalTitles, len(titles))
	for title, takesOption := range titles {
		clone[title] = takesOption
	}
	return clone
}
