package textproc

import "strings"

// stopWords is a basic English stop word list used by frequency-weighted
// similarity so common function words do not dominate the vector space.
var stopWords = func() map[string]struct{} {
	words := strings.Fields(`
		i me my myself we our ours ourselves you your yours yourself
		yourselves he him his himself she her hers herself it its itself
		they them their theirs themselves what which who whom this that
		these those am is are was were be been being have has had having
		do does did doing a an the and but if or because as until while
		of at by for with about against between into through during
		before after above below to from up down in out on off over
		under again further then once here there when where why how all
		any both each few more most other some such no nor not only own
		same so than too very s t can will just don should now d ll m o
		re ve y ain aren couldn didn doesn hadn hasn haven isn ma mightn
		mustn needn shan shouldn wasn weren won wouldn`)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lowercase token is a common English stop
// word.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

// ContentTokens tokenizes text and drops stop words.
func ContentTokens(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
