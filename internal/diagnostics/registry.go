package diagnostics

// Entry is one row of the static diagnostic catalog: everything a
// reporter needs to render a code without the call site having to
// restate the prose every time it reports.
type Entry struct {
	Code        Code
	Severity    Severity
	Title       string
	Explanation string
	Hint        string
	Suggestion  string
}

var unknownEntry = Entry{
	Code:     0,
	Severity: Error,
	Title:    "unknown diagnostic code",
}

var registry = map[Code]Entry{
	TypeMismatchFloatToInt: {
		Code: TypeMismatchFloatToInt, Severity: Error,
		Title:       "cannot assign float to int",
		Explanation: "assigning a float value to an int-typed target discards the fractional part implicitly.",
		Hint:        "cast the value explicitly if truncation is intended.",
		Suggestion:  "use `expr as int`",
	},
	TypeMismatchDoubleToFloat: {
		Code: TypeMismatchDoubleToFloat, Severity: Warning,
		Title:       "narrowing conversion from double to float",
		Explanation: "double has more precision than float; this value may lose precision or overflow to infinity.",
		Hint:        "use double throughout if precision matters, or cast explicitly to document the narrowing.",
	},
	TypeMismatchDoubleToInt: {
		Code: TypeMismatchDoubleToInt, Severity: Error,
		Title:       "cannot assign double to int",
		Explanation: "assigning a double value to an int-typed target discards the fractional part implicitly.",
		Hint:        "cast the value explicitly if truncation is intended.",
		Suggestion:  "use `expr as int`",
	},
	TypeMismatchBoolToInt: {
		Code: TypeMismatchBoolToInt, Severity: Error,
		Title:       "cannot assign bool to int",
		Explanation: "bool and int are not implicitly convertible.",
		Hint:        "cast the value explicitly: `expr as int`.",
	},
	TypeMismatchBoolToFloat: {
		Code: TypeMismatchBoolToFloat, Severity: Error,
		Title:       "cannot assign bool to float",
		Explanation: "bool and float are not implicitly convertible.",
	},
	TypeMismatchBoolToDouble: {
		Code: TypeMismatchBoolToDouble, Severity: Error,
		Title:       "cannot assign bool to double",
		Explanation: "bool and double are not implicitly convertible.",
	},
	TypeMismatchStringToInt: {
		Code: TypeMismatchStringToInt, Severity: Error,
		Title:       "cannot assign string to int",
		Explanation: "string and int are not implicitly convertible.",
		Hint:        "parse the string at runtime, or change the target's declared type.",
	},
	TypeMismatchStringToFloat: {
		Code: TypeMismatchStringToFloat, Severity: Error,
		Title:       "cannot assign string to float",
		Explanation: "string and float are not implicitly convertible.",
	},
	TypeMismatchStringToDouble: {
		Code: TypeMismatchStringToDouble, Severity: Error,
		Title:       "cannot assign string to double",
		Explanation: "string and double are not implicitly convertible.",
	},
	TypeMismatchIntToBool: {
		Code: TypeMismatchIntToBool, Severity: Error,
		Title:       "cannot assign int to bool",
		Explanation: "int and bool are not implicitly convertible.",
		Hint:        "cast the value explicitly: `expr as bool`.",
	},
	TypeMismatchFloatToBool: {
		Code: TypeMismatchFloatToBool, Severity: Error,
		Title:       "cannot assign float to bool",
		Explanation: "float and bool are not implicitly convertible.",
	},
	TypeMismatchDoubleToBool: {
		Code: TypeMismatchDoubleToBool, Severity: Error,
		Title:       "cannot assign double to bool",
		Explanation: "double and bool are not implicitly convertible.",
	},
	TypeMismatchStringToBool: {
		Code: TypeMismatchStringToBool, Severity: Error,
		Title:       "cannot assign string to bool",
		Explanation: "string and bool are not implicitly convertible.",
	},
	TypeMismatchIntToString: {
		Code: TypeMismatchIntToString, Severity: Error,
		Title:       "cannot assign int to string",
		Explanation: "int and string are not implicitly convertible.",
	},
	TypeMismatchFloatToString: {
		Code: TypeMismatchFloatToString, Severity: Error,
		Title:       "cannot assign float to string",
		Explanation: "float and string are not implicitly convertible.",
	},
	TypeMismatchDoubleToString: {
		Code: TypeMismatchDoubleToString, Severity: Error,
		Title:       "cannot assign double to string",
		Explanation: "double and string are not implicitly convertible.",
	},
	TypeMismatchBoolToString: {
		Code: TypeMismatchBoolToString, Severity: Error,
		Title:       "cannot assign bool to string",
		Explanation: "bool and string are not implicitly convertible.",
	},
	StructTypeMismatch: {
		Code: StructTypeMismatch, Severity: Error,
		Title:       "struct type mismatch",
		Explanation: "the value's struct type does not match the target's declared struct type.",
	},
	IncompatibleBinaryOperands: {
		Code: IncompatibleBinaryOperands, Severity: Error,
		Title:       "incompatible operand types",
		Explanation: "the operands of this operator do not form a recognized combination.",
	},
	ForbiddenCast: {
		Code: ForbiddenCast, Severity: Error,
		Title:       "forbidden cast",
		Explanation: "there is no conversion between these two types.",
	},
	CastPrecisionLoss: {
		Code: CastPrecisionLoss, Severity: Warning,
		Title:       "cast may lose precision",
		Explanation: "the target type cannot represent the full range or precision of the source type.",
	},
	InvalidCastTarget: {
		Code: InvalidCastTarget, Severity: Error,
		Title:       "invalid cast target",
		Explanation: "the cast's target is not a recognized type.",
	},
	VariableRedeclared: {
		Code: VariableRedeclared, Severity: Error,
		Title:       "redeclared in this scope",
		Explanation: "a symbol with this name already exists in the current scope.",
		Hint:        "rename one of the declarations, or remove the duplicate.",
	},
	UndefinedVariable: {
		Code: UndefinedVariable, Severity: Error,
		Title:       "undefined name",
		Explanation: "no symbol with this name is visible from the current scope.",
	},
	VariableNotInitialized: {
		Code: VariableNotInitialized, Severity: Warning,
		Title:       "use of uninitialized variable",
		Explanation: "this variable is read before any value has been bound to it.",
	},
	SyntaxError: {
		Code: SyntaxError, Severity: Error,
		Title:       "syntax error",
		Explanation: "the parser could not make sense of this input.",
	},
	InvalidAssignmentTarget: {
		Code: InvalidAssignmentTarget, Severity: Error,
		Title:       "invalid assignment target",
		Explanation: "the left-hand side of an assignment must be a variable or member access.",
	},
	InvalidExpression: {
		Code: InvalidExpression, Severity: Error,
		Title:       "invalid expression in this context",
		Explanation: "a return statement appeared outside of any function body.",
	},
	ConditionTypeMismatch: {
		Code: ConditionTypeMismatch, Severity: Error,
		Title:       "condition has the wrong type",
		Explanation: "a conditional expects a bool (or numeric, per the language's truthiness rule), not this type.",
	},
	UndefinedFunction: {
		Code: UndefinedFunction, Severity: Error,
		Title:       "undefined function",
		Explanation: "no function with this name is visible from the current scope.",
	},
	CallingNonFunction: {
		Code: CallingNonFunction, Severity: Error,
		Title:       "call target is not a function",
		Explanation: "the resolved symbol is a variable or type, not a function.",
	},
	FunctionArgCountMismatch: {
		Code: FunctionArgCountMismatch, Severity: Error,
		Title:       "wrong number of arguments",
		Explanation: "the call supplies a different number of arguments than the function declares parameters.",
	},
	NoMatchingOverload: {
		Code: NoMatchingOverload, Severity: Error,
		Title:       "no matching overload",
		Explanation: "no built-in overload of this name accepts the given argument types.",
	},
	ReturnTypeMismatch: {
		Code: ReturnTypeMismatch, Severity: Error,
		Title:       "return type mismatch",
		Explanation: "the returned value's type is not compatible with the function's declared return type.",
	},
	UnexpectedReturnValue: {
		Code: UnexpectedReturnValue, Severity: Error,
		Title:       "unexpected return value",
		Explanation: "this function returns void but the return statement supplies a value.",
	},
	MissingReturnValue: {
		Code: MissingReturnValue, Severity: Error,
		Title:       "missing return value",
		Explanation: "this function has a non-void return type but the return statement supplies no value.",
	},
	InternalCompilerError: {
		Code: InternalCompilerError, Severity: Fatal,
		Title:       "internal compiler error",
		Explanation: "the checker reached a state it has no handling for.",
	},
	OutOfMemory: {
		Code: OutOfMemory, Severity: Fatal,
		Title:       "out of memory",
		Explanation: "the checker could not allocate the memory it needed to continue.",
	},
}

// Lookup returns the registry entry for code, or the sentinel "unknown
// diagnostic code" entry if code was never registered.
func Lookup(code Code) Entry {
	if entry, ok := registry[code]; ok {
		return entry
	}
	return unknownEntry
}
