package portfolio

// Fixtures matching the recognized export layouts, shared across tests.

const schwabFixture = `"Transactions  for account Individual ...123 as of 07/15/2024 20:14:02 ET"

"Date","Action","Symbol","Description","Quantity","Price","Commission","Fees","Amount"
"07/01/2024","Buy","AAPL","APPLE INC","10","$100.00","$4.95","$0.05","($1,000.00)"
"07/03/2024","Sell","MSFT","MICROSOFT CORP","5","$400.00","$4.95","","$2,000.00"
"07/05/2024","Cash Dividend","AAPL","APPLE INC","","","","","$24.00"
"07/08/2024","MoneyLink Transfer","","TRANSFER FROM BANK","","","","","$5,000.00"
"","Transactions Total","","","","","","","$6,024.00"
"The information provided here is for general informational purposes only."
`

const fidelityFixture = `Brokerage Account History,Export Created: 7/15/2024 8:03 PM ET
Account: Individual X12345678
Date Range: 01/01/2024 to 07/15/2024
Sorted By: Run Date

Run Date,Action,Symbol,Security Description,Security Type,Quantity,Price ($),Commission ($),Fees ($),Accrued Interest ($),Amount ($),Settlement Date


 7/01/2024, YOU BOUGHT NVDA CORP, NVDA, NVIDIA CORP,Cash,8,125.00,,0.02,,-1000.00,7/03/2024
 7/09/2024, DIVIDEND RECEIVED, NVDA, NVIDIA CORP,Cash,,,,,,3.20,
 7/10/2024, ELECTRONIC FUNDS TRANSFER RECEIVED, , ,Cash,,,,,,2500.00,
 7/11/2024, TRANSFER OF ASSETS ACAT RECEIVED, , ,Cash,,,,,,0.00,
`

const holdingsFixture = `Account Number,Account Name,Symbol,Description,Quantity,Last Price,Last Price Change,Current Value,Total Gain/Loss Dollar,Total Gain/Loss Percent,Percent Of Account,Cost Basis Total,Average Cost Basis,Type
X12345678,Individual,AAPL,APPLE INC,10,$110.00,+$1.20,"$1,100.00",+$100.00,+10.00%,11.00%,"$1,000.00",$100.00,Cash
X12345678,Individual,NVDA,NVIDIA CORP,8,$130.00,-$0.50,"$1,040.00",+$40.00,+4.00%,10.40%,"$1,000.00",$125.00,Cash
X12345678,Individual,SPAXX,FIDELITY GOVERNMENT MONEY MARKET,7860.00,$1.00,,"$7,860.00",,,78.60%,,,Cash
"The data and information in this spreadsheet is provided to you solely for your use."
`

const tradeLogFixture = `symbol, side, quantity, entry price, entry date, exit price, exit date, fees, notes
AAPL,LONG,10,100.00,2024-07-01,110.00,2024-07-10,1.00,swing trade
TSLA,SHORT,4,250.00,2024-07-02,240.00,2024-07-09,1.00,
NVDA,LONG,8,125.00,2024-07-03,,,0.50,still open
`
