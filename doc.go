// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mvdd defines a concrete type for reduced ordered Decision
Diagrams (DD): Binary Decision Diagrams, homogeneous Multi-valued
Decision Diagrams, and heterogeneous MDDs, built on one shared hash-consed
node engine. Each kind is a configuration of a single Manager: a BDD is a
Manager whose per-variable domain vector is all 2s, a homogeneous MDD one
whose domain vector is all P, and a heterogeneous MDD one with a free
per-variable domain vector.

Each Manager has a fixed number of variables, Varnum, declared when it is
created, and each variable is represented by an (integer) index in the
interval [0..Varnum), called a level. Most operations return a Node, a
small handle wrapping a vertex in the diagram; terminal values are
allocated lazily from the same node pool as every other vertex, the
first time a given constant is needed.

Like the BuDDy-derived BDD package this module grew out of, we piggyback
on the Go runtime's garbage collector for "external" references made by
client code (see Manager.own), while node pool and unique-table management
are handled internally with explicit reference counting. On top of the
core engine, package mvdd also offers a reliability layer that computes
availability, importance measures, and minimal cut/path vectors for
multi-state systems whose structure function is represented as a diagram.
*/
package mvdd
