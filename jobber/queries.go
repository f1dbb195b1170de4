package jobber

const (
	addressFields       = `street1 street2 city province postalCode country`
	clientSummaryFields = `id firstName lastName companyName`
	pageInfoFields      = `pageInfo { hasNextPage endCursor }`
	lineItemFields      = `lineItems { name description quantity unitPrice taxable total }`
	userNameFields      = `name { full first last }`
	userErrorFields     = `userErrors { message path }`
)

const getClientQuery = `query GetClient($id: EncodedId!) {
  client(id: $id) {
    ` + clientSummaryFields + ` isCompany isLead createdAt updatedAt tags
    emails { address description primary }
    phones { number description primary smsAllowed }
    billingAddress { ` + addressFields + ` }
  }
}`

const getAllClientsQuery = `query GetAllClients($first: Int, $after: String, $searchTerm: String) {
  clients(first: $first, after: $after, searchTerm: $searchTerm) {
    edges { node { ` + clientSummaryFields + ` isCompany isLead createdAt updatedAt tags emails { address primary } phones { number primary } } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getClientPropertiesQuery = `query GetClientProperties($clientId: EncodedId!, $first: Int, $after: String) {
  client(id: $clientId) {
    properties(first: $first, after: $after) {
      edges { node { id address { ` + addressFields + ` } taxRate notes createdAt updatedAt } cursor }
      ` + pageInfoFields + `
    }
  }
}`

const propertyFields = `id client { ` + clientSummaryFields + ` } address { ` + addressFields + ` } taxRate notes createdAt`

const getPropertyQuery = `query GetProperty($id: EncodedId!) {
  property(id: $id) { ` + propertyFields + ` updatedAt }
}`

const getAllPropertiesQuery = `query GetAllProperties($first: Int, $after: String) {
  properties(first: $first, after: $after) {
    edges { node { ` + propertyFields + ` } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getQuoteQuery = `query GetQuote($id: EncodedId!) {
  quote(id: $id) {
    id quoteNumber quoteStatus
    client { ` + clientSummaryFields + ` }
    property { id address { street1 city province } }
    ` + lineItemFields + `
    message validUntil total createdAt updatedAt
  }
}`

const getAllQuotesQuery = `query GetAllQuotes($first: Int, $after: String, $filter: QuoteFilterAttributes) {
  quotes(first: $first, after: $after, filter: $filter) {
    edges { node { id quoteNumber quoteStatus client { ` + clientSummaryFields + ` } total validUntil createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getJobQuery = `query GetJob($id: EncodedId!) {
  job(id: $id) {
    id jobNumber jobStatus jobType title
    client { ` + clientSummaryFields + ` }
    property { id address { street1 city province } }
    ` + lineItemFields + `
    instructions total startAt endAt createdAt updatedAt
  }
}`

const getAllJobsQuery = `query GetAllJobs($first: Int, $after: String, $filter: JobFilterAttributes) {
  jobs(first: $first, after: $after, filter: $filter) {
    edges { node { id jobNumber jobStatus jobType title client { ` + clientSummaryFields + ` } total startAt createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getVisitQuery = `query GetVisit($id: EncodedId!) {
  visit(id: $id) {
    id title
    job { id jobNumber title }
    startAt endAt allDay
    assignedUsers { id name { full } }
    completedAt instructions createdAt updatedAt
  }
}`

const getAllVisitsQuery = `query GetAllVisits($first: Int, $after: String, $filter: VisitFilterAttributes) {
  visits(first: $first, after: $after, filter: $filter) {
    edges { node { id title job { id jobNumber } startAt endAt allDay completedAt createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getInvoiceQuery = `query GetInvoice($id: EncodedId!) {
  invoice(id: $id) {
    id invoiceNumber invoiceStatus
    client { ` + clientSummaryFields + ` }
    ` + lineItemFields + `
    subject dueDate amountDue total paidAmount createdAt updatedAt
  }
}`

const getAllInvoicesQuery = `query GetAllInvoices($first: Int, $after: String, $filter: InvoiceFilterAttributes) {
  invoices(first: $first, after: $after, filter: $filter) {
    edges { node { id invoiceNumber invoiceStatus client { ` + clientSummaryFields + ` } total amountDue dueDate createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getPaymentQuery = `query GetPayment($id: EncodedId!) {
  payment(id: $id) { id invoice { id invoiceNumber } amount paymentMethod receivedAt details createdAt }
}`

const getAllPaymentsQuery = `query GetAllPayments($first: Int, $after: String) {
  payments(first: $first, after: $after) {
    edges { node { id invoice { id invoiceNumber } amount paymentMethod receivedAt createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const userFields = `id ` + userNameFields + ` email { address } phone { number } role isAccountOwner createdAt`

const getUserQuery = `query GetUser($id: EncodedId!) {
  user(id: $id) { ` + userFields + ` }
}`

const getCurrentUserQuery = `query GetCurrentUser {
  user { ` + userFields + ` }
}`

const getAllUsersQuery = `query GetAllUsers($first: Int, $after: String) {
  users(first: $first, after: $after) {
    edges { node { id ` + userNameFields + ` email { address } role isAccountOwner createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const productFields = `id name description defaultUnitCost category taxable createdAt`

const getProductQuery = `query GetProduct($id: EncodedId!) {
  productOrService(id: $id) { ` + productFields + ` updatedAt }
}`

const getAllProductsQuery = `query GetAllProducts($first: Int, $after: String, $filter: ProductOrServiceFilterAttributes) {
  productsAndServices(first: $first, after: $after, filter: $filter) {
    edges { node { ` + productFields + ` } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const getTimeEntryQuery = `query GetTimeEntry($id: EncodedId!) {
  timeEntry(id: $id) {
    id user { id name { full } }
    visit { id job { id jobNumber } }
    startAt endAt durationSeconds note createdAt
  }
}`

const getAllTimeEntriesQuery = `query GetAllTimeEntries($first: Int, $after: String, $filter: TimeEntryFilterAttributes) {
  timeEntries(first: $first, after: $after, filter: $filter) {
    edges { node { id user { id name { full } } startAt endAt durationSeconds note createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

const expenseFields = `id title amount job { id jobNumber } user { id name { full } } date reimburseToUser`

const getExpenseQuery = `query GetExpense($id: EncodedId!) {
  expense(id: $id) { ` + expenseFields + ` description createdAt }
}`

const getAllExpensesQuery = `query GetAllExpenses($first: Int, $after: String, $filter: ExpenseFilterAttributes) {
  expenses(first: $first, after: $after, filter: $filter) {
    edges { node { ` + expenseFields + ` createdAt } cursor }
    ` + pageInfoFields + `
    totalCount
  }
}`

// GetAllWebhooksQuery lists every webhook subscription. The list is not paged.
const GetAllWebhooksQuery = `query GetAllWebhooks {
  webhooks { id url topic createdAt }
}`
