package jobber

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

type (
	Resource string
	Verb     string
)

const (
	ResourceClient    Resource = "client"
	ResourceProperty  Resource = "property"
	ResourceQuote     Resource = "quote"
	ResourceJob       Resource = "job"
	ResourceVisit     Resource = "visit"
	ResourceInvoice   Resource = "invoice"
	ResourcePayment   Resource = "payment"
	ResourceUser      Resource = "user"
	ResourceProduct   Resource = "product"
	ResourceTimeEntry Resource = "timeEntry"
	ResourceExpense   Resource = "expense"
	ResourceWebhook   Resource = "webhook"
)

const (
	VerbCreate        Verb = "create"
	VerbGet           Verb = "get"
	VerbGetAll        Verb = "getAll"
	VerbUpdate        Verb = "update"
	VerbDelete        Verb = "delete"
	VerbArchive       Verb = "archive"
	VerbGetProperties Verb = "getProperties"
	VerbApprove       Verb = "approve"
	VerbConvertToJob  Verb = "convertToJob"
	VerbSendEmail     Verb = "sendEmail"
	VerbClose         Verb = "close"
	VerbComplete      Verb = "complete"
	VerbIncomplete    Verb = "incomplete"
	VerbSend          Verb = "send"
	VerbMarkPaid      Verb = "markPaid"
	VerbVoid          Verb = "void"
	VerbGetCurrent    Verb = "getCurrent"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Params are the host-resolved parameter values of one input item.
type Params map[string]any

type Operation struct {
	Resource Resource
	Verb     Verb
}

func (o Operation) String() string {
	return describe(o.Resource, o.Verb)
}

type handler func(ctx context.Context, n *Node, params Params) ([]gql.Record, error)

// single adapts an operation returning one record.
func single[P any](op Operation, fn func(*Node, context.Context, P) (gql.Record, error)) handler {
	return func(ctx context.Context, n *Node, params Params) ([]gql.Record, error) {
		p, err := decodeParams[P](op, params)
		if err != nil {
			return nil, err
		}
		rec, err := fn(n, ctx, p)
		if err != nil {
			return nil, err
		}
		return []gql.Record{rec}, nil
	}
}

// many adapts an operation returning a list of records.
func many[P any](op Operation, fn func(*Node, context.Context, P) ([]gql.Record, error)) handler {
	return func(ctx context.Context, n *Node, params Params) ([]gql.Record, error) {
		p, err := decodeParams[P](op, params)
		if err != nil {
			return nil, err
		}
		return fn(n, ctx, p)
	}
}

func decodeParams[P any](op Operation, params Params) (P, error) {
	var p P
	if len(params) == 0 {
		return p, nil
	}
	raw, err := json.Marshal(params)
	if err == nil {
		err = json.Unmarshal(raw, &p)
	}
	if err != nil {
		return p, gql.NewValidationError("Invalid parameters for %s: %s", op, err.Error())
	}
	return p, nil
}

var operations = map[Operation]handler{}

func register[P any](resource Resource, verb Verb, fn func(*Node, context.Context, P) (gql.Record, error)) {
	op := Operation{resource, verb}
	operations[op] = single(op, fn)
}

func registerList[P any](resource Resource, verb Verb, fn func(*Node, context.Context, P) ([]gql.Record, error)) {
	op := Operation{resource, verb}
	operations[op] = many(op, fn)
}

func init() {
	register(ResourceClient, VerbCreate, (*Node).CreateClient)
	register(ResourceClient, VerbGet, (*Node).GetClient)
	registerList(ResourceClient, VerbGetAll, (*Node).GetAllClients)
	register(ResourceClient, VerbUpdate, (*Node).UpdateClient)
	register(ResourceClient, VerbArchive, (*Node).ArchiveClient)
	registerList(ResourceClient, VerbGetProperties, (*Node).GetClientProperties)

	register(ResourceProperty, VerbCreate, (*Node).CreateProperty)
	register(ResourceProperty, VerbGet, (*Node).GetProperty)
	registerList(ResourceProperty, VerbGetAll, (*Node).GetAllProperties)
	register(ResourceProperty, VerbUpdate, (*Node).UpdateProperty)
	register(ResourceProperty, VerbDelete, (*Node).DeleteProperty)

	register(ResourceQuote, VerbCreate, (*Node).CreateQuote)
	register(ResourceQuote, VerbGet, (*Node).GetQuote)
	registerList(ResourceQuote, VerbGetAll, (*Node).GetAllQuotes)
	register(ResourceQuote, VerbUpdate, (*Node).UpdateQuote)
	register(ResourceQuote, VerbApprove, (*Node).ApproveQuote)
	register(ResourceQuote, VerbConvertToJob, (*Node).ConvertQuoteToJob)
	register(ResourceQuote, VerbSendEmail, (*Node).SendQuoteEmail)

	register(ResourceJob, VerbCreate, (*Node).CreateJob)
	register(ResourceJob, VerbGet, (*Node).GetJob)
	registerList(ResourceJob, VerbGetAll, (*Node).GetAllJobs)
	register(ResourceJob, VerbUpdate, (*Node).UpdateJob)
	register(ResourceJob, VerbClose, (*Node).CloseJob)
	register(ResourceJob, VerbArchive, (*Node).ArchiveJob)

	register(ResourceVisit, VerbCreate, (*Node).CreateVisit)
	register(ResourceVisit, VerbGet, (*Node).GetVisit)
	registerList(ResourceVisit, VerbGetAll, (*Node).GetAllVisits)
	register(ResourceVisit, VerbUpdate, (*Node).UpdateVisit)
	register(ResourceVisit, VerbComplete, (*Node).CompleteVisit)
	register(ResourceVisit, VerbIncomplete, (*Node).IncompleteVisit)
	register(ResourceVisit, VerbDelete, (*Node).DeleteVisit)

	register(ResourceInvoice, VerbCreate, (*Node).CreateInvoice)
	register(ResourceInvoice, VerbGet, (*Node).GetInvoice)
	registerList(ResourceInvoice, VerbGetAll, (*Node).GetAllInvoices)
	register(ResourceInvoice, VerbUpdate, (*Node).UpdateInvoice)
	register(ResourceInvoice, VerbSend, (*Node).SendInvoice)
	register(ResourceInvoice, VerbMarkPaid, (*Node).MarkInvoicePaid)
	register(ResourceInvoice, VerbVoid, (*Node).VoidInvoice)

	register(ResourcePayment, VerbCreate, (*Node).CreatePayment)
	register(ResourcePayment, VerbGet, (*Node).GetPayment)
	registerList(ResourcePayment, VerbGetAll, (*Node).GetAllPayments)

	register(ResourceUser, VerbGet, (*Node).GetUser)
	registerList(ResourceUser, VerbGetAll, (*Node).GetAllUsers)
	register(ResourceUser, VerbGetCurrent, (*Node).GetCurrentUser)

	register(ResourceProduct, VerbCreate, (*Node).CreateProduct)
	register(ResourceProduct, VerbGet, (*Node).GetProduct)
	registerList(ResourceProduct, VerbGetAll, (*Node).GetAllProducts)
	register(ResourceProduct, VerbUpdate, (*Node).UpdateProduct)
	register(ResourceProduct, VerbDelete, (*Node).DeleteProduct)

	register(ResourceTimeEntry, VerbCreate, (*Node).CreateTimeEntry)
	register(ResourceTimeEntry, VerbGet, (*Node).GetTimeEntry)
	registerList(ResourceTimeEntry, VerbGetAll, (*Node).GetAllTimeEntries)
	register(ResourceTimeEntry, VerbUpdate, (*Node).UpdateTimeEntry)
	register(ResourceTimeEntry, VerbDelete, (*Node).DeleteTimeEntry)

	register(ResourceExpense, VerbCreate, (*Node).CreateExpense)
	register(ResourceExpense, VerbGet, (*Node).GetExpense)
	registerList(ResourceExpense, VerbGetAll, (*Node).GetAllExpenses)
	register(ResourceExpense, VerbUpdate, (*Node).UpdateExpense)
	register(ResourceExpense, VerbDelete, (*Node).DeleteExpense)

	register(ResourceWebhook, VerbCreate, (*Node).CreateWebhook)
	registerList(ResourceWebhook, VerbGetAll, (*Node).GetAllWebhooks)
	register(ResourceWebhook, VerbDelete, (*Node).DeleteWebhook)
}

// Operations lists every registered resource/verb pair, sorted.
func Operations() []Operation {
	out := make([]Operation, 0, len(operations))
	for op := range operations {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Verb < out[j].Verb
	})
	return out
}

// Execute runs one operation for one input item. Single-record operations yield a
// one-element slice.
func (n *Node) Execute(ctx context.Context, resource Resource, verb Verb, params Params) ([]gql.Record, error) {
	h, ok := operations[Operation{resource, verb}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, describe(resource, verb))
	}
	n.Logger.Debug(&logging.LogMessage{
		Message: "Executing operation",
		Pairs:   map[string]any{"operation": describe(resource, verb)},
	})
	return h(ctx, n, params)
}
