package entity

import "errors"

// ErrLeadNotFound sinaliza que o alvo de um merge sumiu entre a
// resolução e o update (deleção concorrente). O caller trata como
// create, nunca engole.
var ErrLeadNotFound = errors.New("lead not found")

// ErrVersionConflict sinaliza que o check otimista de versão falhou:
// outra escrita chegou no mesmo lead primeiro. O caller re-resolve e
// tenta de novo.
var ErrVersionConflict = errors.New("lead version conflict")
