package types

const (
	// ROOT_TOKEN fills every attribute of the synthetic root node
	ROOT_TOKEN = "*root*"
	ROOT_ID    = 0
)

// A Node is a token of a sentence; its ID is its position, with the root
// sentinel at 0 and the words at 1..n-1
type Node struct {
	ID    int
	Word  string
	POS   string
	Lemma string
	CPOS  string
	Feats string
}

func NewRootNode() Node {
	return Node{
		ID:    ROOT_ID,
		Word:  ROOT_TOKEN,
		POS:   ROOT_TOKEN,
		Lemma: ROOT_TOKEN,
		CPOS:  ROOT_TOKEN,
		Feats: ROOT_TOKEN,
	}
}

func (n Node) IsRoot() bool {
	return n.ID == ROOT_ID
}

func (n Node) String() string {
	return n.Word
}

type TaggedToken struct {
	Token, POS string
}

type Sentence interface {
	Tokens() []string
}

type TaggedSentence interface {
	Sentence
	TaggedTokens() []TaggedToken
}
