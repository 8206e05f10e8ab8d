package lexical

// DefaultStopList returns the built-in English stop-list source text:
// articles, pronouns, common verbs, numerals, and abbreviations, in the
// spirit of the list the Okapi/TREC-4 reference runs used. It is parsed
// with ParseStopList, the same parser a caller-supplied replacement goes
// through (engine config's "stoplist" option), so callers can start from
// it and add to it rather than replacing it outright.
func DefaultStopList() string {
	return defaultStopList
}

const defaultStopList = `
# articles, determiners, quantifiers
a an the this that these those some any every each either neither all
both few more most other another such no nor not only own same so than
too very

# pronouns
i me my myself we our ours ourselves you your yours yourself yourselves
he him his himself she her hers herself it its itself they them their
theirs themselves what which who whom whose

# conjunctions, prepositions
and but if or because as until while of at by for with about against
between into through during before after above below to from up down
in out on off over under again further then once here there when where
why how

# common verbs (be/have/do + modals)
am is are was were be been being have has had having do does did doing
will would shall should can could may might must

# common contractions and abbreviations
don dont doesn doesnt didn didnt isn isnt aren arent wasn wasnt weren
werent won wont wouldn wouldnt shouldn shouldnt couldn couldnt cant
cannot ain aint ll re ve

# numerals (spelled out, low value)
one two three four five six seven eight nine ten

# misc function words and filler
also back even still just like well get got going go came come said
says say us let also many much

# single letters occasionally emitted by the tokenizer around punctuation
a b c d e f g h i j k l m n o p q r s t u v w x y z
`
