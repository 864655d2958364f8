package lang

// StdlibPrefix is a preferred-prefix pseudo entry matching Go standard library
// paths, whose first element contains no dot.
const StdlibPrefix = "@std"

var braceBlocks = BlockRules{
	OpenSuffixes:    []string{"{"},
	ClosePrefixes:   []string{"}"},
	CommentPrefixes: []string{"//", "/*", "*"},
}

func builtinPolicies() []*Policy {
	cppBlocks := braceBlocks
	cppBlocks.Sections = []string{"public:", "protected:", "private:"}

	goBlocks := BlockRules{
		OpenSuffixes:    []string{"{", "("},
		ClosePrefixes:   []string{"}", ")"},
		CommentPrefixes: []string{"//"},
	}

	return []*Policy{
		{
			Language:          Java,
			Extension:         ".java",
			ImportSeparator:   ".",
			Indent:            "    ",
			PreferredPrefixes: []string{"java.", "javax."},
			DocStyle:          DocJavadoc,
			Blocks:            braceBlocks,
			primitives: set("boolean", "byte", "char", "short", "int", "long", "float", "double",
				"void", "var"),
		},
		{
			Language:          CSharp,
			Extension:         ".cs",
			NamespaceStyle:    true,
			ImportSeparator:   ".",
			Indent:            "    ",
			PreferredPrefixes: []string{"System"},
			DocStyle:          DocXML,
			Blocks:            braceBlocks,
			primitives: set("bool", "byte", "sbyte", "char", "decimal", "double", "float", "int",
				"uint", "long", "ulong", "short", "ushort", "object", "string", "void", "dynamic", "var"),
		},
		{
			Language:            Cpp,
			Extension:           ".cpp",
			ImportSeparator:     "/",
			Indent:              "    ",
			PreferredPrefixes:   []string{"std."},
			MultipleInheritance: true,
			DocStyle:            DocJavadoc,
			Blocks:              cppBlocks,
			primitives: set("bool", "char", "wchar_t", "short", "int", "long", "float", "double",
				"void", "auto", "unsigned", "signed", "size_t"),
		},
		{
			Language:        PHP,
			Extension:       ".php",
			ImportSeparator: `\`,
			Indent:          "    ",
			DocStyle:        DocJavadoc,
			Blocks:          braceBlocks,
			primitives: set("int", "float", "bool", "string", "array", "mixed", "void", "callable",
				"iterable", "object", "null", "self", "static"),
		},
		{
			Language:          Delphi,
			Extension:         ".pas",
			NamespaceStyle:    true,
			ImportSeparator:   ".",
			Indent:            "  ",
			PreferredPrefixes: []string{"System"},
			DocStyle:          DocXML,
			Blocks: BlockRules{
				OpenPrefixes:  []string{"unit ", "begin", "try", "case ", "repeat", "except", "finally"},
				OpenSuffixes:  []string{"begin"},
				OpenContains:  []string{" = class", " = interface", " = record"},
				ClosePrefixes: []string{"end", "except", "finally", "until"},
				Sections: []string{"interface", "implementation", "type", "uses", "const",
					"private", "protected", "public", "published", "strict private", "initialization"},
				NeverOpen:       []string{"= class;", "= interface;", "= class of"},
				CommentPrefixes: []string{"//", "{", "(*"},
			},
			primitives: set("Integer", "Cardinal", "Int64", "UInt64", "Byte", "Word", "Boolean",
				"Char", "String", "Double", "Single", "Extended", "Currency", "Variant", "Pointer"),
		},
		{
			Language:          VBNet,
			Extension:         ".vb",
			NamespaceStyle:    true,
			ImportSeparator:   ".",
			Indent:            "    ",
			PreferredPrefixes: []string{"System"},
			DocStyle:          DocXML,
			Blocks: BlockRules{
				OpenPrefixes: []string{"Namespace ", "Class ", "Interface ", "Enum ", "Module ",
					"Structure ", "For ", "While ", "Do", "Select Case ", "Try", "Using ", "With ",
					"Else", "Catch", "Finally"},
				OpenSuffixes:  []string{" Then"},
				ClosePrefixes: []string{"End ", "Next", "Loop", "Else", "ElseIf ", "Catch", "Finally"},
				Modifiers: []string{"Public", "Private", "Protected", "Friend", "Shared", "Overrides",
					"Overridable", "NotOverridable", "MustInherit", "NotInheritable", "Partial",
					"Overloads", "Shadows"},
				ModifiedOpeners: []string{"Sub ", "Function "},
				NeverOpen:       []string{"MustOverride ", "Exit "},
				CommentPrefixes: []string{"'"},
			},
			primitives: set("Boolean", "Byte", "Char", "Date", "Decimal", "Double", "Integer", "Long",
				"Object", "SByte", "Short", "Single", "String", "UInteger", "ULong", "UShort"),
		},
		{
			Language:        JavaScript,
			Extension:       ".js",
			ImportSeparator: "/",
			Indent:          "    ",
			DocStyle:        DocJavadoc,
			Blocks:          braceBlocks,
			primitives:      set("number", "string", "boolean", "object", "undefined", "null", "any", "void", "bigint", "symbol"),
		},
		{
			Language:        TypeScript,
			Extension:       ".ts",
			ImportSeparator: "/",
			Indent:          "    ",
			DocStyle:        DocJavadoc,
			Blocks:          braceBlocks,
			primitives: set("number", "string", "boolean", "object", "undefined", "null", "any",
				"unknown", "never", "void", "bigint", "symbol"),
		},
		{
			Language:        Ruby,
			Extension:       ".rb",
			ImportSeparator: "/",
			Indent:          "  ",
			DocStyle:        DocHash,
			Blocks: BlockRules{
				OpenPrefixes: []string{"class ", "module ", "def ", "if ", "unless ", "while ", "until ",
					"case ", "begin", "else", "elsif ", "rescue", "ensure", "when "},
				OpenSuffixes:    []string{" do"},
				OpenContains:    []string{" do |"},
				ClosePrefixes:   []string{"end", "else", "elsif ", "rescue", "ensure", "when "},
				Modifiers:       []string{"private", "protected", "public"},
				NeverOpen:       []string{"; end"},
				CommentPrefixes: []string{"#"},
			},
			primitives: set("Integer", "Float", "String", "Symbol", "Array", "Hash", "Object", "NilClass"),
		},
		{
			Language:          Go,
			Extension:         ".go",
			NamespaceStyle:    true,
			ImportSeparator:   ".", // entries are already import paths
			Indent:            "\t",
			PreferredPrefixes: []string{StdlibPrefix},
			DocStyle:          DocGo,
			Blocks:            goBlocks,
			primitives: set("bool", "byte", "rune", "string", "int", "int8", "int16", "int32", "int64",
				"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "float32", "float64",
				"complex64", "complex128", "error", "any"),
		},
	}
}
