package jobber

const (
	clientPayload    = `client { ` + clientSummaryFields + ` isCompany isLead createdAt updatedAt emails { address primary } phones { number primary } }`
	propertyPayload  = `property { id client { id } address { ` + addressFields + ` } taxRate notes createdAt updatedAt }`
	quotePayload     = `quote { id quoteNumber quoteStatus client { id } total validUntil createdAt updatedAt }`
	jobPayload       = `job { id jobNumber jobStatus jobType title client { id } total startAt endAt createdAt updatedAt }`
	visitPayload     = `visit { id title job { id } startAt endAt allDay completedAt createdAt updatedAt }`
	invoicePayload   = `invoice { id invoiceNumber invoiceStatus client { id } subject dueDate total amountDue createdAt updatedAt }`
	paymentPayload   = `payment { id invoice { id invoiceNumber } amount paymentMethod receivedAt createdAt }`
	productPayload   = `productOrService { ` + productFields + ` updatedAt }`
	timeEntryPayload = `timeEntry { id user { id } startAt endAt durationSeconds note createdAt }`
	expensePayload   = `expense { id title amount job { id } user { id } date reimburseToUser description createdAt }`
	webhookPayload   = `webhook { id url topic createdAt }`
)

const createClientMutation = `mutation CreateClient($input: ClientCreateInput!) {
  clientCreate(input: $input) { ` + clientPayload + ` ` + userErrorFields + ` }
}`

const updateClientMutation = `mutation UpdateClient($id: EncodedId!, $input: ClientUpdateInput!) {
  clientUpdate(id: $id, input: $input) { ` + clientPayload + ` ` + userErrorFields + ` }
}`

const archiveClientMutation = `mutation ArchiveClient($id: EncodedId!) {
  clientArchive(id: $id) { ` + clientPayload + ` ` + userErrorFields + ` }
}`

const createPropertyMutation = `mutation CreateProperty($input: PropertyCreateInput!) {
  propertyCreate(input: $input) { ` + propertyPayload + ` ` + userErrorFields + ` }
}`

const updatePropertyMutation = `mutation UpdateProperty($id: EncodedId!, $input: PropertyUpdateInput!) {
  propertyUpdate(id: $id, input: $input) { ` + propertyPayload + ` ` + userErrorFields + ` }
}`

const deletePropertyMutation = `mutation DeleteProperty($id: EncodedId!) {
  propertyDelete(id: $id) { deletedPropertyId ` + userErrorFields + ` }
}`

const createQuoteMutation = `mutation CreateQuote($input: QuoteCreateInput!) {
  quoteCreate(input: $input) { ` + quotePayload + ` ` + userErrorFields + ` }
}`

const updateQuoteMutation = `mutation UpdateQuote($id: EncodedId!, $input: QuoteUpdateInput!) {
  quoteUpdate(id: $id, input: $input) { ` + quotePayload + ` ` + userErrorFields + ` }
}`

const approveQuoteMutation = `mutation ApproveQuote($id: EncodedId!) {
  quoteApprove(id: $id) { ` + quotePayload + ` ` + userErrorFields + ` }
}`

const convertQuoteToJobMutation = `mutation ConvertQuoteToJob($id: EncodedId!) {
  quoteConvertToJob(id: $id) { ` + jobPayload + ` ` + userErrorFields + ` }
}`

const sendQuoteEmailMutation = `mutation SendQuoteEmail($id: EncodedId!, $input: QuoteSendEmailInput) {
  quoteSendEmail(id: $id, input: $input) { ` + quotePayload + ` ` + userErrorFields + ` }
}`

const createJobMutation = `mutation CreateJob($input: JobCreateInput!) {
  jobCreate(input: $input) { ` + jobPayload + ` ` + userErrorFields + ` }
}`

const updateJobMutation = `mutation UpdateJob($id: EncodedId!, $input: JobUpdateInput!) {
  jobUpdate(id: $id, input: $input) { ` + jobPayload + ` ` + userErrorFields + ` }
}`

const closeJobMutation = `mutation CloseJob($id: EncodedId!) {
  jobClose(id: $id) { ` + jobPayload + ` ` + userErrorFields + ` }
}`

const archiveJobMutation = `mutation ArchiveJob($id: EncodedId!) {
  jobArchive(id: $id) { ` + jobPayload + ` ` + userErrorFields + ` }
}`

const createVisitMutation = `mutation CreateVisit($input: VisitCreateInput!) {
  visitCreate(input: $input) { ` + visitPayload + ` ` + userErrorFields + ` }
}`

const updateVisitMutation = `mutation UpdateVisit($id: EncodedId!, $input: VisitUpdateInput!) {
  visitUpdate(id: $id, input: $input) { ` + visitPayload + ` ` + userErrorFields + ` }
}`

const completeVisitMutation = `mutation CompleteVisit($id: EncodedId!, $input: VisitCompleteInput) {
  visitComplete(id: $id, input: $input) { ` + visitPayload + ` ` + userErrorFields + ` }
}`

const incompleteVisitMutation = `mutation IncompleteVisit($id: EncodedId!) {
  visitIncomplete(id: $id) { ` + visitPayload + ` ` + userErrorFields + ` }
}`

const deleteVisitMutation = `mutation DeleteVisit($id: EncodedId!) {
  visitDelete(id: $id) { deletedVisitId ` + userErrorFields + ` }
}`

const createInvoiceMutation = `mutation CreateInvoice($input: InvoiceCreateInput!) {
  invoiceCreate(input: $input) { ` + invoicePayload + ` ` + userErrorFields + ` }
}`

const updateInvoiceMutation = `mutation UpdateInvoice($id: EncodedId!, $input: InvoiceUpdateInput!) {
  invoiceUpdate(id: $id, input: $input) { ` + invoicePayload + ` ` + userErrorFields + ` }
}`

const sendInvoiceMutation = `mutation SendInvoice($id: EncodedId!, $input: InvoiceSendInput) {
  invoiceSend(id: $id, input: $input) { ` + invoicePayload + ` ` + userErrorFields + ` }
}`

const markInvoicePaidMutation = `mutation MarkInvoicePaid($id: EncodedId!, $input: InvoiceMarkPaidInput) {
  invoiceMarkPaid(id: $id, input: $input) { ` + invoicePayload + ` ` + userErrorFields + ` }
}`

const voidInvoiceMutation = `mutation VoidInvoice($id: EncodedId!) {
  invoiceVoid(id: $id) { ` + invoicePayload + ` ` + userErrorFields + ` }
}`

const createPaymentMutation = `mutation CreatePayment($input: PaymentCreateInput!) {
  paymentCreate(input: $input) { ` + paymentPayload + ` ` + userErrorFields + ` }
}`

const createProductMutation = `mutation CreateProduct($input: ProductOrServiceCreateInput!) {
  productOrServiceCreate(input: $input) { ` + productPayload + ` ` + userErrorFields + ` }
}`

const updateProductMutation = `mutation UpdateProduct($id: EncodedId!, $input: ProductOrServiceUpdateInput!) {
  productOrServiceUpdate(id: $id, input: $input) { ` + productPayload + ` ` + userErrorFields + ` }
}`

const deleteProductMutation = `mutation DeleteProduct($id: EncodedId!) {
  productOrServiceDelete(id: $id) { deletedProductOrServiceId ` + userErrorFields + ` }
}`

const createTimeEntryMutation = `mutation CreateTimeEntry($input: TimeEntryCreateInput!) {
  timeEntryCreate(input: $input) { ` + timeEntryPayload + ` ` + userErrorFields + ` }
}`

const updateTimeEntryMutation = `mutation UpdateTimeEntry($id: EncodedId!, $input: TimeEntryUpdateInput!) {
  timeEntryUpdate(id: $id, input: $input) { ` + timeEntryPayload + ` ` + userErrorFields + ` }
}`

const deleteTimeEntryMutation = `mutation DeleteTimeEntry($id: EncodedId!) {
  timeEntryDelete(id: $id) { deletedTimeEntryId ` + userErrorFields + ` }
}`

const createExpenseMutation = `mutation CreateExpense($input: ExpenseCreateInput!) {
  expenseCreate(input: $input) { ` + expensePayload + ` ` + userErrorFields + ` }
}`

const updateExpenseMutation = `mutation UpdateExpense($id: EncodedId!, $input: ExpenseUpdateInput!) {
  expenseUpdate(id: $id, input: $input) { ` + expensePayload + ` ` + userErrorFields + ` }
}`

const deleteExpenseMutation = `mutation DeleteExpense($id: EncodedId!) {
  expenseDelete(id: $id) { deletedExpenseId ` + userErrorFields + ` }
}`

// CreateWebhookMutation registers a subscription for one topic.
const CreateWebhookMutation = `mutation CreateWebhook($input: WebhookCreateInput!) {
  webhookCreate(input: $input) { ` + webhookPayload + ` ` + userErrorFields + ` }
}`

// DeleteWebhookMutation removes a subscription by id.
const DeleteWebhookMutation = `mutation DeleteWebhook($id: EncodedId!) {
  webhookDelete(id: $id) { deletedWebhookId ` + userErrorFields + ` }
}`
