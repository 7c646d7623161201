package js

import (
	"github.com/dop251/goja"

	"github.com/rgrove/nokogiri/xml"
)

// Binder creates JavaScript objects for managed wrappers. Each wrapper binds
// to exactly one JS object: the binder keeps its own identity caches so a
// script comparing two bindings of the same wrapper with === sees them equal.
type Binder struct {
	runtime *Runtime

	documentMap  map[*xml.Document]*goja.Object
	namespaceMap map[*xml.Namespace]*goja.Object

	// Prototype objects for instanceof checks.
	documentProto  *goja.Object
	namespaceProto *goja.Object
	nodeSetProto   *goja.Object
}

// NewBinder creates a binder for the given runtime.
func NewBinder(runtime *Runtime) *Binder {
	b := &Binder{
		runtime:      runtime,
		documentMap:  make(map[*xml.Document]*goja.Object),
		namespaceMap: make(map[*xml.Namespace]*goja.Object),
	}
	b.setupPrototypes()
	return b
}

// setupPrototypes creates the prototype chain for the exposed interfaces so
// instanceof works from scripts.
func (b *Binder) setupPrototypes() {
	b.documentProto = b.defineInterface("Document")
	b.namespaceProto = b.defineInterface("Namespace")
	b.nodeSetProto = b.defineInterface("NodeSet")
}

func (b *Binder) defineInterface(name string) *goja.Object {
	vm := b.runtime.vm
	proto := vm.NewObject()
	constructor := vm.ToValue(func(call goja.ConstructorCall) *goja.Object {
		panic(vm.NewTypeError("Illegal constructor"))
	})
	constructorObj := constructor.ToObject(vm)
	constructorObj.Set("prototype", proto)
	proto.Set("constructor", constructorObj)
	vm.Set(name, constructorObj)
	return proto
}

// BindDocument creates (or returns the cached) JS object for a document.
func (b *Binder) BindDocument(doc *xml.Document) *goja.Object {
	if doc == nil {
		return nil
	}
	if jsObj, ok := b.documentMap[doc]; ok {
		return jsObj
	}

	vm := b.runtime.vm
	jsDoc := vm.NewObject()
	jsDoc.SetPrototype(b.documentProto)

	jsDoc.DefineAccessorProperty("rootName", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if root := doc.Root(); root != nil {
			return vm.ToValue(root.Name)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	// document.namespaces: in-scope declarations of the root element,
	// wrapped document-owned.
	jsDoc.Set("namespaces", func(call goja.FunctionCall) goja.Value {
		root := doc.Root()
		if root == nil {
			return vm.NewArray()
		}
		wrapped := doc.InScopeNamespaces(root)
		out := make([]interface{}, 0, len(wrapped))
		for _, ns := range wrapped {
			out = append(out, b.BindNamespace(ns))
		}
		return vm.NewArray(out...)
	})

	// document.namespaceSet: the query engine's namespace axis for the
	// root element, members wrapped ephemeral.
	jsDoc.Set("namespaceSet", func(call goja.FunctionCall) goja.Value {
		root := doc.Root()
		if root == nil {
			return goja.Null()
		}
		return b.BindNodeSet(doc.NamespaceSet(root))
	})

	b.documentMap[doc] = jsDoc
	return jsDoc
}

// BindNamespace creates (or returns the cached) JS object for a namespace
// wrapper. prefix and href read through to the native struct and come back
// null, not "", when the field is absent.
func (b *Binder) BindNamespace(ns *xml.Namespace) *goja.Object {
	if ns == nil {
		return nil
	}
	if jsObj, ok := b.namespaceMap[ns]; ok {
		return jsObj
	}

	vm := b.runtime.vm
	jsNs := vm.NewObject()
	jsNs.SetPrototype(b.namespaceProto)

	jsNs.DefineAccessorProperty("prefix", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if prefix, ok := ns.Prefix(); ok {
			return vm.ToValue(prefix)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsNs.DefineAccessorProperty("href", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if href, ok := ns.Href(); ok {
			return vm.ToValue(href)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsNs.DefineAccessorProperty("ownerDocument", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if doc := ns.Document(); doc != nil {
			return b.BindDocument(doc)
		}
		return goja.Null()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	b.namespaceMap[ns] = jsNs
	return jsNs
}

// BindNodeSet creates a JS object for a result set. Sets are not identity
// cached: every query produces a fresh set.
func (b *Binder) BindNodeSet(set *xml.NodeSet) *goja.Object {
	vm := b.runtime.vm
	jsSet := vm.NewObject()
	jsSet.SetPrototype(b.nodeSetProto)

	jsSet.DefineAccessorProperty("length", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(set.Length())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsSet.Set("item", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		ns := set.Get(int(call.Arguments[0].ToInteger()))
		if ns == nil {
			return goja.Null()
		}
		return b.BindNamespace(ns)
	})

	return jsSet
}
