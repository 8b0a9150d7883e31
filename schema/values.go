// Copyright 2025 The Graphly Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

// ValueClasses returns the built-in datatype classes every model carries so
// that literal-valued property ranges resolve without the graph declaring
// them.
func ValueClasses() []Resource {
	return []Resource{
		NewEntity("xsd:string", "String", "", "rdfs:Datatype"),
		NewEntity("xsd:integer", "Integer", "", "rdfs:Datatype"),
		NewEntity("xsd:decimal", "Decimal", "", "rdfs:Datatype"),
		NewEntity("xsd:float", "Float", "", "rdfs:Datatype"),
		NewEntity("xsd:double", "Double", "", "rdfs:Datatype"),
		NewEntity("xsd:boolean", "Boolean", "", "rdfs:Datatype"),
		NewEntity("xsd:dateTime", "Date Time", "", "rdfs:Datatype"),
		NewEntity("xsd:date", "Date", "", "rdfs:Datatype"),
		NewEntity("xsd:time", "Time", "", "rdfs:Datatype"),
		NewEntity("xsd:gYear", "G Year", "", "rdfs:Datatype"),
		NewEntity("xsd:gMonth", "G Month", "", "rdfs:Datatype"),
		NewEntity("xsd:gDay", "G Day", "", "rdfs:Datatype"),
		NewEntity("xsd:gYearMonth", "G Year Month", "", "rdfs:Datatype"),
		NewEntity("xsd:gMonthDay", "G Month Day", "", "rdfs:Datatype"),
		NewEntity("xsd:duration", "Duration", "", "rdfs:Datatype"),
		NewEntity("xsd:dayTimeDuration", "Day Time Duration", "", "rdfs:Datatype"),
		NewEntity("xsd:yearMonthDuration", "Year Month Duration", "", "rdfs:Datatype"),
		NewEntity("xsd:hexBinary", "Hexadecimal Binary", "", "rdfs:Datatype"),
		NewEntity("xsd:base64Binary", "Base64 Binary", "", "rdfs:Datatype"),
		NewEntity("xsd:anyURI", "Any URI", "", "rdfs:Datatype"),
		NewEntity("xsd:language", "Language", "", "rdfs:Datatype"),
		NewEntity("xsd:langString", "Language String", "", "rdfs:Datatype"),
		NewEntity("rdf:HTML", "HTML", "", "rdfs:Datatype"),
	}
}
