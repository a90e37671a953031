// Package ddd contains the small set of building blocks shared by aggregates
// that publish domain events: the DomainEvent contract, an embeddable event
// header and an embeddable event collector.
package ddd
