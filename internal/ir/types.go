package ir

// Request is the canonical form of a derivation request. Enumerations are
// stored by name.
type Request struct {
	Dhatu   string `json:"dhatu"`
	Code    string `json:"code"`
	La      string `json:"la"`
	Prayoga string `json:"prayoga"`
	Purusha string `json:"purusha"`
	Vacana  string `json:"vacana"`
}

// Step is one entry of a rule history.
type Step struct {
	Rule     string `json:"rule"`
	Result   string `json:"result"`
	Declined bool   `json:"declined,omitempty"`
}

// Choice is one entry of the choice ledger. Decision is "accept" or "decline".
type Choice struct {
	Rule     string `json:"rule"`
	Decision string `json:"decision"`
}

// Derivation is the storable record of one finished branch.
type Derivation struct {
	ID            string   `json:"id"`
	RequestID     string   `json:"request_id"`
	Request       Request  `json:"request"`
	Surface       string   `json:"surface"`
	History       []Step   `json:"history"`
	Choices       []Choice `json:"choices"`
	Digest        string   `json:"digest"`
	EngineVersion string   `json:"engine_version"`
	IRVersion     string   `json:"ir_version"`
}

func (r Request) object() Object {
	return Object{
		"dhatu":   String(r.Dhatu),
		"code":    String(r.Code),
		"la":      String(r.La),
		"prayoga": String(r.Prayoga),
		"purusha": String(r.Purusha),
		"vacana":  String(r.Vacana),
	}
}

func (s Step) object() Object {
	return Object{
		"rule":     String(s.Rule),
		"result":   String(s.Result),
		"declined": Bool(s.Declined),
	}
}

func (c Choice) object() Object {
	return Object{
		"rule":     String(c.Rule),
		"decision": String(c.Decision),
	}
}

func choicesArray(choices []Choice) Array {
	arr := make(Array, len(choices))
	for i, c := range choices {
		arr[i] = c.object()
	}
	return arr
}
