// Package dataprocessing turns raw board items into canonical business
// records. It consolidates scalar normalization, schema-driven column
// resolution, category canonicalization and data quality reporting into
// one package that covers the full cleaning lifecycle.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Normalizers: coerce messy scalars (currency text, dates) into canonical values
// 2. Resolver: locates semantic fields in arbitrarily-titled columns
// 3. Canonicalizers: collapse raw status/stage labels into closed category sets
// 4. Builders: assemble DealRecord / WorkOrderRecord sets and compute caveats
//
// # Data Flow
//
//	Schema + RawItems → Resolver → Normalizers → Canonicalizers → Records → Caveats
//
// # Error Handling
//
// Normalization is fail-soft by contract: a malformed cell produces a
// defaulted value (zero amount, zero date, Unknown/Open category), never
// an error. A single bad cell must not abort ingestion of a batch.
// Systemic quality problems surface in aggregate through ComputeCaveats
// instead of per-row failures.
//
// # Testing
//
// Use table-driven tests when adding new normalization cases.
package dataprocessing
