// Copyright (c) 2025 Visvasity LLC

// Package request defines the generation requests accepted by newtypegen and
// the rules that validate them before any code is generated.
//
// A request table is usually read from a YAML file:
//
//	package: ids
//	mode: mixed
//	serialize: [json]
//	types:
//	  - name: UserID
//	    base: u64
//	    visibility: public
//	  - name: tag
//	    base: string
//	    capacity: 8
//
// or built from command line shorthands such as "UserID=u64,vis=public" and
// "tag=string,cap=8".
package request
