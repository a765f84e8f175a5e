// Package models defines the core data structures for semantic dependency
// graphs. It includes the exchange-format records and the analyzable graph
// model with its match-flag state.
package models

type DMRSGraph struct {
	ID     string      `json:"id"`
	Input  string      `json:"input"`
	Source string      `json:"source"`
	Tokens []DMRSToken `json:"tokens"`
	Nodes  []DMRSNode  `json:"nodes"`
	Edges  []DMRSEdge  `json:"edges"`
	Tops   []int       `json:"tops,omitempty"`
}

type DMRSToken struct {
	Index int    `json:"index"`
	Form  string `json:"form"`
	Lemma string `json:"lemma"`
	Carg  string `json:"carg,omitempty"`
}

type DMRSNode struct {
	Label    string `json:"label"`
	Tokens   []int  `json:"tokens,omitempty"`
	Abstract bool   `json:"abstract,omitempty"`
}

type DMRSEdge struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Label  string `json:"label"`
}
